package replyparser_test

import (
	"fmt"

	"github.com/welldanyogia/replyparser"
)

func ExampleParseReply() {
	body := "Thanks, that fixed it!\n\n" +
		"On Mon, Jan 1, 2020 at 1:00 PM Ann <ann@example.com> wrote:\n" +
		"> Could you try the patch?\n\n" +
		"--\nDev Team"

	fmt.Println(replyparser.ParseReply(body))
	// Output: Thanks, that fixed it!
}

func ExampleNew() {
	parser, err := replyparser.New(replyparser.Config{
		QuoteHeaders: []string{`^Le\s(.{1,500})écrit\s?:`},
	})
	if err != nil {
		panic(err)
	}

	body := "Merci !\n\nLe 1 janv. 2020 à 10:00, Ann a écrit :\n> Bonjour"
	fmt.Println(parser.Parse(body).VisibleText())
	// Output: Merci !
}
