// Package card models plain-text "embed" cards: a titled, box-drawn block of
// fixed-width lines suitable for chat-style UIs that only speak monospace
// text. The wrapping engine is byte-oriented fixed-size chunking, not
// word-aware wrapping, so rendered content round-trips losslessly.
package card

import (
	"fmt"
	"strings"
	"time"
)

// Field is one name/value pair shown on a card. Both parts must be non-empty
// after trimming.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Data is the plain construction and snapshot record for an Embed. It is the
// only shape that crosses the package boundary: callers build one to
// construct an embed and get one back from ToData.
type Data struct {
	Px          int     `json:"px,omitempty"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Timestamp   string  `json:"timestamp,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
	Footer      string  `json:"footer,omitempty"`
}

// Rule is the precomputed horizontal rule produced by SizeEmbed. Its zero
// value means the embed is currently unsized.
type Rule struct {
	Char string
	Line string
}

// MaxFooterLen bounds footer input length in bytes.
const MaxFooterLen = 20

// Embed is a mutable card under construction. All state is private; mutation
// happens only through the setters, each of which validates before assigning
// and returns the receiver for chaining. An Embed is not safe for concurrent
// mutation; treat ToData output as an immutable snapshot.
type Embed struct {
	px          int
	title       string
	description string
	timestamp   string
	footer      string
	fields      []Field
	rule        Rule
}

// New constructs an Embed from a plain record. A zero Px leaves the embed at
// the default width. skipValidation bypasses per-field checks and is meant
// for cloning data that was already validated.
func New(d Data, skipValidation bool) (*Embed, error) {
	if d.Px != 0 && !validWidth(d.Px) {
		return nil, fmt.Errorf("%w: px %d", ErrWidthOutOfRange, d.Px)
	}

	fields := make([]Field, 0, len(d.Fields))
	if skipValidation {
		fields = append(fields, d.Fields...)
	} else {
		for _, f := range d.Fields {
			name, err := verifyString(f.Name)
			if err != nil {
				return nil, fmt.Errorf("field name %q: %w", f.Name, err)
			}
			value, err := verifyString(f.Value)
			if err != nil {
				return nil, fmt.Errorf("field value %q: %w", f.Value, err)
			}
			fields = append(fields, Field{Name: name, Value: value})
		}
	}

	return &Embed{
		px:          d.Px,
		title:       d.Title,
		description: d.Description,
		timestamp:   d.Timestamp,
		footer:      d.Footer,
		fields:      fields,
	}, nil
}

// verifyString trims s and rejects the empty result. All string inputs that
// end up on a card (footer, field names and values) pass through here.
func verifyString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrBlankField
	}
	return s, nil
}

// width returns the effective interior column width.
func (e *Embed) width() int {
	if e.px == 0 {
		return DefaultWidth
	}
	return e.px
}

// SizeEmbed sets the interior column width and precomputes a horizontal rule
// of |px-4| box dashes. Called with no argument it clears the rule back to
// its unsized zero value, which the title and description setters do before
// wrapping so a stale rule never outlives a content change.
func (e *Embed) SizeEmbed(px ...int) (*Embed, error) {
	if len(px) == 0 {
		e.rule = Rule{}
		return e, nil
	}
	w := px[0]
	if !validWidth(w) {
		return nil, fmt.Errorf("%w: px %d", ErrWidthOutOfRange, w)
	}
	n := w - 4
	if n < 0 {
		n = -n
	}
	e.px = w
	e.rule = Rule{Char: RuleChar, Line: strings.Repeat(RuleChar, n)}
	return e, nil
}

// SetTitle wraps title into emphasis-decorated wall lines at the current
// width and stores the rendered block. Empty titles are tolerated and render
// as a single decorated empty line.
func (e *Embed) SetTitle(title string) (*Embed, error) {
	e.rule = Rule{}
	wrapped, err := Wrap(title, e.width(), StyleEmphasis)
	if err != nil {
		return nil, err
	}
	e.title = wrapped
	return e, nil
}

// SetDescription wraps desc into plain wall lines at the current width and
// stores the block surrounded by one leading and one trailing blank line.
// Empty input is rejected.
func (e *Embed) SetDescription(desc string) (*Embed, error) {
	if desc == "" {
		return nil, ErrEmptyDescription
	}
	e.rule = Rule{}
	wrapped, err := Wrap(desc, e.width(), StylePlain)
	if err != nil {
		return nil, err
	}
	e.description = "\n" + wrapped + "\n"
	return e, nil
}

// SetFooter stores a single code-fenced wall line. Footers are never chunked;
// input longer than MaxFooterLen bytes is rejected.
func (e *Embed) SetFooter(footer string) (*Embed, error) {
	trimmed, err := verifyString(footer)
	if err != nil {
		return nil, fmt.Errorf("footer: %w", err)
	}
	if len(trimmed) > MaxFooterLen {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrFooterTooLong, len(trimmed), MaxFooterLen)
	}
	e.footer = Wall + " `" + trimmed + "`"
	return e, nil
}

// SetTimestamp with no argument stamps the card with the current date,
// rendered as "  *•*  M/D/YYYY" with the day offset by one. The offset is
// long-standing observable output and is kept as-is.
//
// Passing an explicit time clears the stored timestamp to the empty string;
// explicit values have never been rendered and callers rely on that.
func (e *Embed) SetTimestamp(ts ...time.Time) *Embed {
	if len(ts) > 0 {
		e.timestamp = ""
		return e
	}
	now := time.Now()
	e.timestamp = fmt.Sprintf("  *•*  %d/%d/%d", int(now.Month()), now.Day()+1, now.Year())
	return e
}

// AddField validates and appends one name/value pair, preserving insertion
// order.
func (e *Embed) AddField(name, value string) (*Embed, error) {
	n, err := verifyString(name)
	if err != nil {
		return nil, fmt.Errorf("field name %q: %w", name, err)
	}
	v, err := verifyString(value)
	if err != nil {
		return nil, fmt.Errorf("field value %q: %w", value, err)
	}
	e.fields = append(e.fields, Field{Name: n, Value: v})
	return e, nil
}

// Fields returns a copy of the field sequence in insertion order.
func (e *Embed) Fields() []Field {
	out := make([]Field, len(e.fields))
	copy(out, e.fields)
	return out
}

// Title returns the stored (possibly rendered) title.
func (e *Embed) Title() string { return e.title }

// Description returns the stored (possibly rendered) description.
func (e *Embed) Description() string { return e.description }

// Footer returns the stored (possibly rendered) footer.
func (e *Embed) Footer() string { return e.footer }

// Timestamp returns the stored timestamp display string.
func (e *Embed) Timestamp() string { return e.timestamp }

// Px returns the explicitly configured width, or zero when unsized.
func (e *Embed) Px() int { return e.px }

// HRule returns the precomputed rule record.
func (e *Embed) HRule() Rule { return e.rule }

// NormalizeFields flattens a mixed collection of Field values into one
// ordered, validated sequence. Accepted shapes are Field, []Field and
// [][]Field: two levels of nesting, matching what callers actually hand in.
func NormalizeFields(raw ...any) ([]Field, error) {
	var out []Field
	for _, item := range raw {
		switch v := item.(type) {
		case Field:
			f, err := normalizeField(v)
			if err != nil {
				return nil, err
			}
			out = append(out, f)
		case []Field:
			for _, inner := range v {
				f, err := normalizeField(inner)
				if err != nil {
					return nil, err
				}
				out = append(out, f)
			}
		case [][]Field:
			for _, level := range v {
				for _, inner := range level {
					f, err := normalizeField(inner)
					if err != nil {
						return nil, err
					}
					out = append(out, f)
				}
			}
		default:
			return nil, fmt.Errorf("%w: %T", ErrInvalidFieldShape, item)
		}
	}
	return out, nil
}

func normalizeField(f Field) (Field, error) {
	name, err := verifyString(f.Name)
	if err != nil {
		return Field{}, fmt.Errorf("field name %q: %w", f.Name, err)
	}
	value, err := verifyString(f.Value)
	if err != nil {
		return Field{}, fmt.Errorf("field value %q: %w", f.Value, err)
	}
	return Field{Name: name, Value: value}, nil
}

// Equal reports whether two embeds hold identical state: every scalar
// attribute plus pairwise field equality in order.
func (e *Embed) Equal(other *Embed) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	if e.px != other.px ||
		e.title != other.title ||
		e.description != other.description ||
		e.timestamp != other.timestamp ||
		e.footer != other.footer {
		return false
	}
	if len(e.fields) != len(other.fields) {
		return false
	}
	for i := range e.fields {
		if e.fields[i] != other.fields[i] {
			return false
		}
	}
	return true
}

// ToData takes a plain snapshot of the embed. The returned record shares no
// mutable state with the embed and is safe to hand out.
func (e *Embed) ToData() Data {
	return Data{
		Px:          e.px,
		Title:       e.title,
		Description: e.description,
		Timestamp:   e.timestamp,
		Fields:      e.Fields(),
		Footer:      e.footer,
	}
}

// Render assembles the stored, already-decorated parts into one printable
// card: title, rule, description, fields, footer, timestamp, skipping parts
// that were never set. Pure string assembly; no re-wrapping happens here.
func (e *Embed) Render() string {
	var parts []string
	if e.title != "" {
		parts = append(parts, e.title)
	}
	if e.rule.Line != "" {
		parts = append(parts, e.rule.Line)
	}
	if e.description != "" {
		parts = append(parts, e.description)
	}
	for _, f := range e.fields {
		parts = append(parts, Wall+" *"+f.Name+"*: "+f.Value)
	}
	if e.footer != "" {
		parts = append(parts, e.footer)
	}
	if e.timestamp != "" {
		parts = append(parts, e.timestamp)
	}
	return strings.Join(parts, "\n")
}
