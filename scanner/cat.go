package scanner

import (
	"bytes"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/cyk"
)

// --- Category codes --------------------------------------------------------

// CatCode is a category code for runes.
type CatCode int16

// IllegalCatCode is the category of runes unknown to a categorizer.
const IllegalCatCode CatCode = 0

// RuneCategorizer assigns category codes to runes. Loner categories do not
// form sequences: every rune of a loner category is a sequence by itself.
type RuneCategorizer interface {
	Cat(r rune) (cat CatCode, isLoner bool)
}

// CatSeq is a run of runes of equal category.
type CatSeq struct {
	Cat    CatCode // catcode of all runes in this sequence
	Length int     // length of sequence in terms of runes
}

// --- Category sequence reader ----------------------------------------------

// CatSeqReader reads runs of runes of equal category. The runes of the most
// recent runs are collected in an output buffer, until ResetOutput is called.
type CatSeqReader struct {
	reader     io.RuneReader
	next       rune   // lookahead rune
	nextSize   int    // size of lookahead rune in bytes
	hasNext    bool   // is a lookahead rune pending?
	isEOF      bool   // has the reader been exhausted?
	start, end uint64 // as bytes index
	writer     bytes.Buffer
}

// NewCatSeqReader creates a category sequence reader for a rune reader.
func NewCatSeqReader(r io.RuneReader) *CatSeqReader {
	return &CatSeqReader{
		reader: r,
	}
}

// Next reads the next run of runes of equal category. At the end of input,
// Next returns io.EOF.
func (rs *CatSeqReader) Next(rc RuneCategorizer) (csq CatSeq, err error) {
	var r rune
	r, err = rs.lookahead()
	if err == io.EOF {
		return csq, io.EOF
	} else if err != nil {
		return csq, fmt.Errorf("scanner cannot read sequence (%w)", err)
	}
	var isLoner bool
	csq.Cat, isLoner = rc.Cat(r)
	rs.match(r)
	csq.Length = 1
	if isLoner { // rune category is not allowed to form sequences
		return csq, nil
	}
	for {
		if r, err = rs.lookahead(); err == io.EOF {
			return csq, nil // EOF will be reported by the next call
		} else if err != nil {
			return csq, fmt.Errorf("scanner cannot read sequence (%w)", err)
		}
		if cc, _ := rc.Cat(r); cc != csq.Cat {
			return csq, nil
		}
		rs.match(r)
		csq.Length++
	}
}

// OutputString returns the runes read since the last call to ResetOutput.
func (rs *CatSeqReader) OutputString() string {
	return rs.writer.String()
}

// ResetOutput clears the output buffer.
func (rs *CatSeqReader) ResetOutput() {
	if rs == nil {
		return
	}
	rs.writer.Reset()
	rs.start = rs.end
}

// Span returns the byte positions of the output buffer within the input.
func (rs *CatSeqReader) Span() cyk.Span {
	return cyk.Span{rs.start, rs.end}
}

func (rs *CatSeqReader) lookahead() (r rune, err error) {
	if rs == nil || rs.isEOF {
		return utf8.RuneError, io.EOF
	}
	if rs.hasNext {
		return rs.next, nil
	}
	var sz int
	r, sz, err = rs.reader.ReadRune()
	if err == io.EOF {
		rs.isEOF = true
		return utf8.RuneError, io.EOF
	} else if err != nil {
		return 0, err
	}
	rs.next, rs.nextSize, rs.hasNext = r, sz, true
	return r, nil
}

func (rs *CatSeqReader) match(r rune) {
	if rs == nil || !rs.hasNext {
		panic("scanner: match without lookahead")
	}
	rs.writer.WriteRune(r)
	rs.end += uint64(rs.nextSize)
	rs.hasNext = false
}

// --- Utilities -------------------------------------------------------------

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
