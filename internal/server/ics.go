package server

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	ics "github.com/arran4/golang-ical"
	"github.com/sainthonore/pedidos/internal/store"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const icsProductID = "-//Saint Honore//Pedidos//ES"

// Calendar is one ICS export: the orders of a provider for a country.
type Calendar struct {
	Provider string
	Country  string
	Orders   []store.Order
	Stamp    time.Time
}

// WriteICS writes cal as an iCalendar document. Every order is an all-day
// event with a display alarm the day before.
func WriteICS(w io.Writer, cal Calendar) error {
	c := ics.NewCalendar()
	c.SetProductId(icsProductID)
	c.SetCalscale("GREGORIAN")
	c.SetMethod(ics.MethodPublish)
	c.SetXWRCalName("Pedidos " + cal.Provider + " " + cal.Country)

	for i, o := range cal.Orders {
		day := o.Date.Format("20060102")
		ev := c.AddEvent(fmt.Sprintf("%s-%s-%s-%d@pedidos.sainthonore", day, slug(o.Brand), slug(cal.Country), i))
		ev.SetDtStampTime(cal.Stamp)
		ev.SetAllDayStartAt(o.Date)
		ev.SetAllDayEndAt(o.Date.AddDate(0, 0, 1))
		ev.SetSummary(orderTitle(o))
		ev.SetDescription(fmt.Sprintf("Pedido %s de %s para %s", o.Brand, cal.Provider, cal.Country))
		ev.SetLocation(cal.Country)

		alarm := ev.AddAlarm()
		alarm.SetTrigger("-P1D")
		alarm.SetAction(ics.ActionDisplay)
		alarm.SetDescription("Recordatorio: pedido " + o.Brand)
	}

	_, err := io.WriteString(w, c.Serialize())
	return err
}

// slug folds accents away and keeps letters, digits, '-' and '_'.
func slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, r := range folded {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)), r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func icsFilename(country string) string {
	return "pedidos_" + slug(country) + ".ics"
}
