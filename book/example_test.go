package book_test

import (
	"fmt"

	"github.com/mj41/mcbook/book"
	"github.com/mj41/mcbook/text"
)

func ExampleBook_GiveCommand() {
	click, _ := text.NewClickEvent(text.RunCommand, "/time set day")
	day, _ := text.NewText("[Morning]", text.WithClick(click), text.WithColor(text.Gold))
	title, _ := text.NewText("Press: ", text.WithBold(true))

	b := book.New("Steve", "Clock", book.NewPage(title, day))
	cmd, err := b.GiveCommandDialect("@p", 1, text.Strict)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cmd)
	// Output:
	// /give @p minecraft:written_book{author:"Steve",title:"Clock",pages:['["",{"bold":true,"text":"Press: ","type":"text"},{"color":"gold","clickEvent":{"action":"run_command","value":"/time set day"},"text":"[Morning]","type":"text"}]']} 1
}
