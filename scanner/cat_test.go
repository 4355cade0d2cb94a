package scanner

import (
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/cyk"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCatSeqReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.scanner")
	defer teardown()
	//
	rs := NewCatSeqReader(strings.NewReader("ab  c,,d"))
	expected := []struct {
		cat  CatCode
		len  int
		text string
	}{
		{catWord, 2, "ab"},
		{catSpace, 2, "  "},
		{catWord, 1, "c"},
		{catPunct, 1, ","},
		{catPunct, 1, ","},
		{catWord, 1, "d"},
	}
	for i, x := range expected {
		rs.ResetOutput()
		csq, err := rs.Next(sentenceCategorizer{})
		if err != nil {
			t.Fatalf("#%d: unexpected error %v", i, err)
		}
		if csq.Cat != x.cat || csq.Length != x.len {
			t.Errorf("#%d: expected cat=%d len=%d, got cat=%d len=%d", i, x.cat, x.len, csq.Cat, csq.Length)
		}
		if rs.OutputString() != x.text {
			t.Errorf("#%d: expected text %q, got %q", i, x.text, rs.OutputString())
		}
	}
	if _, err := rs.Next(sentenceCategorizer{}); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestCatSeqReaderSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.scanner")
	defer teardown()
	//
	rs := NewCatSeqReader(strings.NewReader("größe x"))
	rs.Next(sentenceCategorizer{})
	if rs.Span() != (cyk.Span{0, 7}) {
		t.Errorf("expected byte span (0…7), got %v", rs.Span())
	}
	rs.ResetOutput()
	rs.Next(sentenceCategorizer{})
	rs.ResetOutput()
	rs.Next(sentenceCategorizer{})
	if rs.Span() != (cyk.Span{8, 9}) {
		t.Errorf("expected byte span (8…9), got %v", rs.Span())
	}
}
