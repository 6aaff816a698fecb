package model

// Category — элемент посевного справочника категорий.
// Справочник заполняется один раз при развёртывании и дальше не меняется.
type Category struct {
	ID   int64
	Name string
	Kind Kind
}
