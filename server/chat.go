package server

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/avolkov/cardbase/model"
	"github.com/avolkov/cardbase/utils"
	"github.com/gin-gonic/gin"
)

const chatMatchLimit = 5

const noMatchAnswer = "Пока я не нашёл подходящих карточек по вашему запросу. " +
	"Попробуйте уточнить формулировку или добавить другие ключевые слова."

const matchAnswerFormat = "По вашему запросу я отобрал %d карточек: %s. " +
	"Сейчас сервис работает в режиме имитации и не генерирует полный текст ответа, " +
	"но вы можете открыть эти карточки и посмотреть подробности и источники."

// extractKeywords splits the message on whitespace and keeps lower-cased
// tokens longer than 2 characters. Repeated tokens are folded into one.
func extractKeywords(message string) []string {
	keywords := []string{}
	for _, word := range strings.Fields(message) {
		if utf8.RuneCountInString(word) <= 2 {
			continue
		}
		lower := strings.ToLower(word)
		if !utils.ContainsString(keywords, lower) {
			keywords = append(keywords, lower)
		}
	}
	return keywords
}

// mockChat answers a free-text message by picking up to 5 cards whose title
// or description contains any of the message keywords. No language model is
// involved, the answer is assembled from canned strings.
func (s *Server) mockChat(c *gin.Context) {
	var req model.ChatMockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	keywords := extractKeywords(req.Message)

	cards := []model.Card{}
	if len(keywords) > 0 {
		conds := make([]string, 0, len(keywords))
		args := make([]interface{}, 0, 2*len(keywords))
		for _, keyword := range keywords {
			conds = append(conds, "(title ILIKE ? OR description ILIKE ?)")
			pattern := "%" + keyword + "%"
			args = append(args, pattern, pattern)
		}
		err := s.db.
			Preload("Domain").
			Where(strings.Join(conds, " OR "), args...).
			Limit(chatMatchLimit).
			Find(&cards).Error
		if err != nil {
			internalError(c, err)
			return
		}
	}

	usedCards := make([]model.ChatUsedCard, 0, len(cards))
	titles := make([]string, 0, len(cards))
	for i := range cards {
		card := &cards[i]
		used := model.ChatUsedCard{Id: card.Id, Title: card.Title, Status: card.Status}
		if card.Domain != nil {
			used.DomainName = &card.Domain.Name
		}
		usedCards = append(usedCards, used)
		titles = append(titles, card.Title)
	}

	answer := noMatchAnswer
	if len(usedCards) > 0 {
		answer = fmt.Sprintf(matchAnswerFormat, len(usedCards), strings.Join(titles, ", "))
	}

	c.JSON(http.StatusOK, model.ChatMockResponse{Answer: answer, UsedCards: usedCards})
}
