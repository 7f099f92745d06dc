// Package translate renders assembler and runtime diagnostics in the
// language of the user running the datapath tools.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// printer is chosen once, from the user's preferred locales.
var printer *message.Printer

func init() {
	tags, err := locale.GetLocales()
	if err != nil {
		log.Printf("rtl: cannot detect user locale, using en-US: %v", err)
	}

	if len(tags) == 0 {
		tags = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(tags...))
}

// From returns the diagnostic key, a Sprintf() format, localized and
// expanded with args.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
