package model

type ChatMockRequest struct {
	Message string `json:"message"`
	CardID  *int32 `json:"card_id"`
}

// ChatUsedCard summarizes one card referenced by a mock chat answer.
// DomainName is nil when the card is not filed under any domain.
type ChatUsedCard struct {
	Id         int32   `json:"id"`
	Title      string  `json:"title"`
	DomainName *string `json:"domain_name"`
	Status     string  `json:"status"`
}

type ChatMockResponse struct {
	Answer    string         `json:"answer"`
	UsedCards []ChatUsedCard `json:"used_cards"`
}
