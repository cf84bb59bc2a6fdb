package present

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nao1215/lookupbot/internal/lookup"
	"github.com/nao1215/lookupbot/internal/model"
	"github.com/nao1215/lookupbot/internal/report"
)

const (
	// DefaultInlineLimit is the largest JSON rendering, in characters, of an
	// export that is still shown inline.
	DefaultInlineLimit = 2000

	// maxInlineDocument caps any inline document so it fits a message body
	// together with its code fences.
	maxInlineDocument = 4000

	// DefaultPrefix is the command prefix shown in usage hints.
	DefaultPrefix = "!"

	// DefaultBrand is the name shown in footers.
	DefaultBrand = "Mobile Search Bot"

	// displayZone is the only timezone footers are rendered in.
	displayZone = "Asia/Kolkata"

	// footerLayout renders as "02 Jan 2006 • 03:04 PM IST".
	footerLayout = "02 Jan 2006 • 03:04 PM MST"

	// exampleNumber is used in usage hints.
	exampleNumber = "9876543210"
)

// Stats is the data shown by the stats command.
type Stats struct {
	Uptime   time.Duration
	Searches int64
	Guilds   int
	Users    int
}

// Presenter builds every message the bot sends.
// It holds no per-search state and is safe for concurrent use.
type Presenter struct {
	now         func() time.Time
	location    *time.Location
	prefix      string
	brand       string
	inlineLimit int
	printer     *message.Printer
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Presenter) {
		p.now = now
	}
}

// WithLocation sets the timezone used for footers and export timestamps.
func WithLocation(loc *time.Location) Option {
	return func(p *Presenter) {
		if loc != nil {
			p.location = loc
		}
	}
}

// WithPrefix sets the command prefix shown in usage and help messages.
func WithPrefix(prefix string) Option {
	return func(p *Presenter) {
		if prefix != "" {
			p.prefix = prefix
		}
	}
}

// WithBrand sets the name shown in footers.
func WithBrand(brand string) Option {
	return func(p *Presenter) {
		if brand != "" {
			p.brand = brand
		}
	}
}

// WithInlineLimit sets the largest export shown inline.
func WithInlineLimit(n int) Option {
	return func(p *Presenter) {
		if n > 0 {
			p.inlineLimit = n
		}
	}
}

// New creates a Presenter.
func New(opts ...Option) *Presenter {
	p := &Presenter{
		now:         time.Now,
		location:    defaultLocation(),
		prefix:      DefaultPrefix,
		brand:       DefaultBrand,
		inlineLimit: DefaultInlineLimit,
		printer:     message.NewPrinter(language.English),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// defaultLocation returns IST, or UTC when the zone database is missing.
func defaultLocation() *time.Location {
	loc, err := time.LoadLocation(displayZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// footer returns the brand and the current time.
func (p *Presenter) footer() string {
	return p.brand + " • " + p.now().In(p.location).Format(footerLayout)
}

// usageLine returns the search usage example.
func (p *Presenter) usageLine() string {
	return fmt.Sprintf("**Usage:** `%ssearch %s`", p.prefix, exampleNumber)
}

// Usage is sent when search is called without an argument.
func (p *Presenter) Usage() Message {
	return Message{
		Title:       "ℹ️ Mobile Search",
		Description: p.usageLine(),
		Color:       ColorInfo,
	}
}

// InvalidInput is sent when the argument holds no 10-digit number.
func (p *Presenter) InvalidInput() Message {
	return Message{
		Title:       "❌ Invalid Input",
		Description: "Please provide a valid 10-digit mobile number.\n" + p.usageLine(),
		Color:       ColorError,
	}
}

// Searching is the placeholder shown while the lookup runs.
func (p *Presenter) Searching(number string) Message {
	return Message{
		Title:       "🚀 Searching...",
		Description: fmt.Sprintf("Searching for: `%s`", number),
		Color:       ColorPrimary,
	}
}

// Failure replaces the placeholder when the lookup failed.
// Errors reported by the API are shown verbatim; anything else gets a
// generic message so transport details stay in the logs.
func (p *Presenter) Failure(number string, err error) Message {
	var upErr *lookup.UpstreamError
	if errors.As(err, &upErr) {
		return Message{
			Title:       "❌ Search Failed",
			Description: fmt.Sprintf("Search for `%s` failed.\nError: %s", number, upErr.Error()),
			Color:       ColorError,
			Footer:      p.footer(),
		}
	}

	return Message{
		Title:       "❌ Search Error",
		Description: "An error occurred while searching. Please try again later.",
		Color:       ColorError,
		Footer:      p.footer(),
	}
}

// NoRecords replaces the placeholder when the lookup found nothing.
func (p *Presenter) NoRecords(number string) Message {
	return Message{
		Title:       "⚠️ No Records Found",
		Description: fmt.Sprintf("No records found for: `%s`", number),
		Color:       ColorWarning,
		Footer:      p.footer(),
	}
}

// Summary announces how many records were found. When setID is not empty
// the message carries JSON and text export actions for that result set.
func (p *Presenter) Summary(number string, count int, setID string) Message {
	noun := "records"
	if count == 1 {
		noun = "record"
	}

	msg := Message{
		Title:       "✅ Search Complete",
		Description: fmt.Sprintf("Found **%d** %s for `%s`", count, noun, number),
		Color:       ColorSuccess,
		Footer:      p.footer(),
	}

	if setID != "" {
		msg.Actions = []Action{
			{ID: ExportActionID(report.FormatJSON, setID), Label: "Export JSON"},
			{ID: ExportActionID(report.FormatText, setID), Label: "Export TXT"},
		}
	}
	return msg
}

// Detail renders record index (1-based) of total.
// Father's name and address are left out when they hold no data.
func (p *Presenter) Detail(number string, rec model.Record, index, total int) Message {
	d := model.NewDisplayRecord(rec, number)

	fields := []Field{
		{Name: "📱 Mobile", Value: "`" + d.Mobile + "`", Inline: true},
		{Name: "👤 Name", Value: "`" + d.Name + "`", Inline: true},
	}
	if d.HasFatherName() {
		fields = append(fields, Field{Name: "👨 Father's Name", Value: "`" + d.FatherName + "`", Inline: true})
	}
	if d.HasAddress() {
		fields = append(fields, Field{Name: "🏠 Address", Value: d.Address})
	}

	return Message{
		Title:  fmt.Sprintf("📱 Search Result %d/%d", index, total),
		Color:  ColorSuccess,
		Fields: fields,
		Footer: p.footer(),
	}
}

// Help lists the available commands.
func (p *Presenter) Help() Message {
	return Message{
		Title:       "🆘 Bot Help",
		Description: "Mobile Number Search Bot Commands",
		Color:       ColorInfo,
		Fields: []Field{
			{
				Name:  "🔍 Search Commands",
				Value: fmt.Sprintf("`%ssearch %s` - Search mobile number", p.prefix, exampleNumber),
			},
			{
				Name: "📊 Info Commands",
				Value: fmt.Sprintf("`%shelp` - This help\n`%sping` - Check latency\n`%sstats` - Bot statistics",
					p.prefix, p.prefix, p.prefix),
			},
		},
		Footer: p.footer(),
	}
}

// Pong reports the latency to the chat platform.
func (p *Presenter) Pong(latency time.Duration) Message {
	return Message{
		Title:       "🏓 Pong!",
		Description: fmt.Sprintf("Latency: `%dms`", latency.Milliseconds()),
		Color:       ColorSuccess,
	}
}

// Stats reports uptime, search count and reach.
func (p *Presenter) Stats(s Stats) Message {
	return Message{
		Title: "📊 Bot Statistics",
		Color: ColorPremium,
		Fields: []Field{
			{Name: "⏱️ Uptime", Value: "`" + FormatUptime(s.Uptime) + "`", Inline: true},
			{Name: "🔍 Searches", Value: "`" + p.printer.Sprintf("%d", s.Searches) + "`", Inline: true},
			{Name: "🌐 Servers", Value: "`" + p.printer.Sprintf("%d", s.Guilds) + "`", Inline: true},
			{Name: "👥 Users", Value: "`" + p.printer.Sprintf("%d", s.Users) + "`", Inline: true},
		},
		Footer: p.footer(),
	}
}

// ExportExpired is sent when an export action names an unknown or expired
// result set.
func (p *Presenter) ExportExpired() Message {
	return Message{
		Title:       "⌛ Export Unavailable",
		Description: "These results have expired. Run the search again to export them.",
		Color:       ColorWarning,
	}
}

// Export renders records in format f. Whatever the format, the document is
// embedded in the message only when the JSON rendering of the same export
// fits within the inline limit; otherwise it is attached.
func (p *Presenter) Export(f report.Format, number string, records []model.Record) (ExportPayload, error) {
	now := p.now().In(p.location)
	export := model.NewExport(number, records, now)
	doc, err := report.Render(f, export)
	if err != nil {
		return ExportPayload{}, err
	}

	jsonDoc := doc
	if f != report.FormatJSON {
		if jsonDoc, err = report.Render(report.FormatJSON, export); err != nil {
			return ExportPayload{}, err
		}
	}

	title := fmt.Sprintf("📄 Export (%s)", f.Extension())
	if utf8.RuneCountInString(jsonDoc) <= p.inlineLimit && utf8.RuneCountInString(doc) <= maxInlineDocument {
		return ExportPayload{
			Message: Message{
				Title:       title,
				Description: "```" + codeLanguage(f) + "\n" + doc + "```",
				Color:       ColorInfo,
			},
		}, nil
	}

	return ExportPayload{
		Message: Message{
			Title:       title,
			Description: fmt.Sprintf("Export of %d record(s) for `%s` is attached.", len(records), number),
			Color:       ColorInfo,
			Footer:      p.footer(),
		},
		Attachment: &Attachment{
			Name:        fmt.Sprintf("lookup_%s_%s.%s", number, now.Format("20060102_150405"), f.Extension()),
			ContentType: f.ContentType(),
			Data:        []byte(doc),
		},
	}, nil
}

// codeLanguage returns the code block language hint for f.
func codeLanguage(f report.Format) string {
	switch f {
	case report.FormatJSON:
		return "json"
	case report.FormatMarkdown:
		return "md"
	default:
		return ""
	}
}

// FormatUptime renders d as "1d 2h 3m" when at least a day has passed and as
// "2h 3m 4s" otherwise.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
