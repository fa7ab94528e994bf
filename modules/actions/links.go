package actions

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/iota-uz/iota-actions/pkg/types"
)

var ActionsLink = types.NavigationItem{
	Name:     "NavigationLinks.Actions",
	Icon:     icons.List(icons.Props{Size: "20"}),
	Href:     "/actions",
	Children: nil,
}

var NavItems = []types.NavigationItem{
	ActionsLink,
}
