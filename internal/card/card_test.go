package card

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	e, err := New(Data{}, false)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if e.Px() != 0 {
		t.Errorf("Px = %d, want 0 (unsized)", e.Px())
	}
	if e.width() != DefaultWidth {
		t.Errorf("width = %d, want %d", e.width(), DefaultWidth)
	}
}

func TestNew_PxValidation(t *testing.T) {
	for _, px := range []int{1, 2, 47, 99} {
		if _, err := New(Data{Px: px}, false); !errors.Is(err, ErrWidthOutOfRange) {
			t.Errorf("New with px %d: err = %v, want ErrWidthOutOfRange", px, err)
		}
	}
	for _, px := range []int{3, 28, 46} {
		if _, err := New(Data{Px: px}, false); err != nil {
			t.Errorf("New with px %d: unexpected error %v", px, err)
		}
	}
}

func TestNew_FieldValidation(t *testing.T) {
	_, err := New(Data{Fields: []Field{{Name: " ", Value: "v"}}}, false)
	if !errors.Is(err, ErrBlankField) {
		t.Errorf("blank field name: err = %v, want ErrBlankField", err)
	}

	_, err = New(Data{Fields: []Field{{Name: "n", Value: ""}}}, false)
	if !errors.Is(err, ErrBlankField) {
		t.Errorf("blank field value: err = %v, want ErrBlankField", err)
	}

	// skipValidation admits anything, used when cloning trusted data.
	e, err := New(Data{Fields: []Field{{Name: "", Value: ""}}}, true)
	if err != nil {
		t.Fatalf("skipValidation New returned error: %v", err)
	}
	if len(e.Fields()) != 1 {
		t.Errorf("fields = %v, want the raw field kept", e.Fields())
	}
}

func TestSizeEmbed(t *testing.T) {
	e, _ := New(Data{}, false)

	if _, err := e.SizeEmbed(2); !errors.Is(err, ErrWidthOutOfRange) {
		t.Errorf("SizeEmbed(2): err = %v, want ErrWidthOutOfRange", err)
	}
	if _, err := e.SizeEmbed(47); !errors.Is(err, ErrWidthOutOfRange) {
		t.Errorf("SizeEmbed(47): err = %v, want ErrWidthOutOfRange", err)
	}
	if e.Px() != 0 {
		t.Errorf("failed SizeEmbed mutated px to %d", e.Px())
	}

	if _, err := e.SizeEmbed(10); err != nil {
		t.Fatalf("SizeEmbed(10) returned error: %v", err)
	}
	if e.Px() != 10 {
		t.Errorf("Px = %d, want 10", e.Px())
	}
	if got := e.HRule().Line; got != strings.Repeat(RuleChar, 6) {
		t.Errorf("rule = %q, want 6 dashes", got)
	}

	// |px-4| also covers widths below 4.
	e.SizeEmbed(3)
	if got := e.HRule().Line; got != RuleChar {
		t.Errorf("rule = %q, want 1 dash", got)
	}

	// No-arg call clears the rule back to the zero record.
	e.SizeEmbed()
	if e.HRule() != (Rule{}) {
		t.Errorf("rule after reset = %+v, want zero value", e.HRule())
	}
}

func TestSetTitle(t *testing.T) {
	e, _ := New(Data{}, false)
	e.SizeEmbed(5)

	if _, err := e.SetTitle("HelloWorld"); err != nil {
		t.Fatalf("SetTitle returned error: %v", err)
	}
	want := "│ *Hello*\n│ *World*"
	if e.Title() != want {
		t.Errorf("title = %q, want %q", e.Title(), want)
	}
	if e.HRule() != (Rule{}) {
		t.Error("SetTitle should clear the rule record")
	}
}

func TestSetTitle_EmptyTolerated(t *testing.T) {
	e, _ := New(Data{}, false)
	if _, err := e.SetTitle(""); err != nil {
		t.Fatalf("SetTitle(\"\") returned error: %v", err)
	}
	if e.Title() != "│ **" {
		t.Errorf("title = %q, want single decorated empty line", e.Title())
	}
}

func TestSetDescription(t *testing.T) {
	e, _ := New(Data{}, false)
	e.SizeEmbed(5)

	if _, err := e.SetDescription("HelloWorld!"); err != nil {
		t.Fatalf("SetDescription returned error: %v", err)
	}
	want := "\n│ Hello\n│ World\n│ !\n"
	if e.Description() != want {
		t.Errorf("description = %q, want %q", e.Description(), want)
	}
}

func TestSetDescription_EmptyRejected(t *testing.T) {
	e, _ := New(Data{}, false)
	_, err := e.SetDescription("")
	if !errors.Is(err, ErrEmptyDescription) {
		t.Errorf("err = %v, want ErrEmptyDescription", err)
	}
	if e.Description() != "" {
		t.Errorf("failed setter mutated description to %q", e.Description())
	}
}

func TestSetFooter(t *testing.T) {
	e, _ := New(Data{}, false)

	if _, err := e.SetFooter(strings.Repeat("x", 21)); !errors.Is(err, ErrFooterTooLong) {
		t.Errorf("21-byte footer: err = %v, want ErrFooterTooLong", err)
	}
	if e.Footer() != "" {
		t.Errorf("failed setter mutated footer to %q", e.Footer())
	}

	if _, err := e.SetFooter(strings.Repeat("x", 20)); err != nil {
		t.Fatalf("20-byte footer returned error: %v", err)
	}
	want := "│ `" + strings.Repeat("x", 20) + "`"
	if e.Footer() != want {
		t.Errorf("footer = %q, want %q", e.Footer(), want)
	}

	if _, err := e.SetFooter("   "); !errors.Is(err, ErrBlankField) {
		t.Errorf("blank footer: err = %v, want ErrBlankField", err)
	}
}

func TestSetTimestamp_Now(t *testing.T) {
	e, _ := New(Data{}, false)
	e.SetTimestamp()

	now := time.Now()
	want := fmt.Sprintf("  *•*  %d/%d/%d", int(now.Month()), now.Day()+1, now.Year())
	if e.Timestamp() != want {
		t.Errorf("timestamp = %q, want %q", e.Timestamp(), want)
	}
}

func TestSetTimestamp_ExplicitCleared(t *testing.T) {
	e, _ := New(Data{Timestamp: "leftover"}, false)
	e.SetTimestamp(time.Unix(0, 0))
	if e.Timestamp() != "" {
		t.Errorf("explicit timestamp stored %q, want empty string", e.Timestamp())
	}
}

func TestAddField_Order(t *testing.T) {
	e, _ := New(Data{}, false)
	if _, err := e.AddField("A", "B"); err != nil {
		t.Fatalf("AddField returned error: %v", err)
	}
	if _, err := e.AddField("C", "D"); err != nil {
		t.Fatalf("AddField returned error: %v", err)
	}

	fields := e.Fields()
	want := []Field{{Name: "A", Value: "B"}, {Name: "C", Value: "D"}}
	if len(fields) != 2 || fields[0] != want[0] || fields[1] != want[1] {
		t.Errorf("fields = %v, want %v", fields, want)
	}

	if _, err := e.AddField("", "x"); !errors.Is(err, ErrBlankField) {
		t.Errorf("blank name: err = %v, want ErrBlankField", err)
	}
	if len(e.Fields()) != 2 {
		t.Error("failed AddField appended anyway")
	}
}

func TestNormalizeFields(t *testing.T) {
	got, err := NormalizeFields(
		Field{Name: "a", Value: "1"},
		[]Field{{Name: "b", Value: "2"}, {Name: "c", Value: "3"}},
		[][]Field{{{Name: "d", Value: "4"}}},
	)
	if err != nil {
		t.Fatalf("NormalizeFields returned error: %v", err)
	}
	names := make([]string, len(got))
	for i, f := range got {
		names[i] = f.Name
	}
	if strings.Join(names, "") != "abcd" {
		t.Errorf("order = %v, want a,b,c,d", names)
	}

	if _, err := NormalizeFields("not a field"); !errors.Is(err, ErrInvalidFieldShape) {
		t.Errorf("err = %v, want ErrInvalidFieldShape", err)
	}
	if _, err := NormalizeFields([]Field{{Name: " ", Value: "x"}}); !errors.Is(err, ErrBlankField) {
		t.Errorf("err = %v, want ErrBlankField", err)
	}
}

func TestEqual(t *testing.T) {
	base := func() *Embed {
		e, _ := New(Data{Px: 10, Title: "t", Description: "d", Timestamp: "ts", Footer: "f",
			Fields: []Field{{Name: "a", Value: "1"}}}, false)
		return e
	}

	a, b := base(), base()
	if !a.Equal(a) {
		t.Error("Equal not reflexive")
	}
	if !a.Equal(b) || !b.Equal(a) {
		t.Error("Equal not symmetric on identical state")
	}

	mutations := map[string]func(*Embed){
		"px":          func(e *Embed) { e.px = 11 },
		"title":       func(e *Embed) { e.title = "other" },
		"description": func(e *Embed) { e.description = "other" },
		"timestamp":   func(e *Embed) { e.timestamp = "other" },
		"footer":      func(e *Embed) { e.footer = "other" },
		"field value": func(e *Embed) { e.fields[0].Value = "2" },
		"field count": func(e *Embed) { e.fields = append(e.fields, Field{Name: "b", Value: "2"}) },
	}
	for name, mutate := range mutations {
		c := base()
		mutate(c)
		if a.Equal(c) {
			t.Errorf("Equal blind to differing %s", name)
		}
	}

	if a.Equal(nil) {
		t.Error("Equal(nil) should be false")
	}
}

func TestToData_Snapshot(t *testing.T) {
	e, _ := New(Data{Px: 10}, false)
	e.AddField("a", "1")

	snap := e.ToData()
	if snap.Px != 10 || len(snap.Fields) != 1 {
		t.Fatalf("snapshot = %+v", snap)
	}

	// Mutating the snapshot must not reach back into the embed.
	snap.Fields[0].Value = "changed"
	if e.Fields()[0].Value != "1" {
		t.Error("ToData shares field backing array with the embed")
	}
}

func TestChaining(t *testing.T) {
	e, _ := New(Data{}, false)
	got, err := e.SizeEmbed(5)
	if err != nil || got != e {
		t.Fatalf("SizeEmbed chaining broken: %v", err)
	}
	got, err = e.SetTitle("Hi")
	if err != nil || got != e {
		t.Fatalf("SetTitle chaining broken: %v", err)
	}
	if e.SetTimestamp() != e {
		t.Fatal("SetTimestamp chaining broken")
	}
}

func TestRender_Assembly(t *testing.T) {
	e, _ := New(Data{}, false)
	e.SizeEmbed(5)
	e.SetTitle("Hello")
	e.SizeEmbed(5) // restore the rule cleared by SetTitle
	e.SetFooter("v1")
	e.AddField("A", "B")

	got := e.Render()
	want := strings.Join([]string{
		"│ *Hello*",
		"─",
		"│ *A*: B",
		"│ `v1`",
	}, "\n")
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}
