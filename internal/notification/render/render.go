package render

import (
	"fmt"
	"strings"
	"time"

	catalogdomain "github.com/networkasro-maker/asro/internal/catalog/domain"
	customerdomain "github.com/networkasro-maker/asro/internal/customer/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// The five placeholders a template may carry. Anything else is left
// verbatim, so rendering already-rendered text is a no-op.
const (
	PlaceholderName    = "{nama}"
	PlaceholderAddress = "{alamat}"
	PlaceholderPackage = "{paket}"
	PlaceholderBill    = "{tagihan}"
	PlaceholderDueDate = "{jatuh_tempo}"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders a whole-rupiah amount with Indonesian digit
// grouping, e.g. 150000 -> "Rp 150.000".
func FormatRupiah(amount int64) string {
	return "Rp " + idPrinter.Sprintf("%v", number.Decimal(amount))
}

// FormatDate renders a date the way the id-ID locale displays it.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// Render substitutes every placeholder occurrence with the customer's and
// package's fields. Idempotent once no placeholders remain.
func Render(template string, customer customerdomain.Customer, pkg catalogdomain.Package) string {
	return strings.NewReplacer(
		PlaceholderName, customer.Name,
		PlaceholderAddress, customer.Address,
		PlaceholderPackage, pkg.Name,
		PlaceholderBill, FormatRupiah(pkg.Price),
		PlaceholderDueDate, FormatDate(customer.DueDate),
	).Replace(template)
}
