package types

import "github.com/a-h/templ"

type NavigationItem struct {
	Name     string
	Href     string
	Icon     templ.Component
	Children []NavigationItem
}
