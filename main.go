package main

import "github.com/chaimictalks/news-admin/cmd"

func main() {
	cmd.Execute()
}
