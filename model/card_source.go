package model

/*

CardSource is a "many-to-many" relation of card annotated with a source

CardID: card id
SourceID: source id
Note: optional free-form note on why the source is attached

*/

type CardSource struct {
	CardID   int32   `json:"card_id" gorm:"primaryKey"`
	SourceID int32   `json:"source_id" gorm:"primaryKey"`
	Note     *string `json:"note"`
}
