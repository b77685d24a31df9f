package fixture

import (
	_ "embed"
	"html/template"
)

type pageData struct {
	Title           string
	DuplicateLabels bool
	MissingHeading  bool
	HiddenHeading   bool
	RenderDelayMS   int
}

// Одностраничное приложение: карточки модулей → боковое меню → представление.
// Клик по карточке ловится делегированием на #dashboard, поэтому клик по
// вложенному span всплывает до .card.
//
//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))
