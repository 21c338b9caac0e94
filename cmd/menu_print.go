package cmd

import (
	"fmt"

	"github.com/chaimictalks/news-admin/internal/nav"
)

func printMenu(deps *Dependencies, activePath string) {
	composer := nav.NewComposer(deps.Guard, nil)
	if activePath != "" {
		composer.SeedOpen(activePath)
	}

	items := composer.Visible()
	if len(items) == 0 {
		fmt.Println("(no visible menu items)")
		return
	}

	for _, item := range items {
		if !item.IsGroup() {
			fmt.Printf("%-24s %s\n", item.Label, item.Path)
			continue
		}

		marker := "+"
		if composer.IsOpen(item.Key) {
			marker = "-"
		}
		fmt.Printf("%s %s\n", marker, item.Label)
		if composer.IsOpen(item.Key) {
			for _, child := range item.Children {
				fmt.Printf("    %-20s %s\n", child.Label, child.Path)
			}
		}
	}
}
