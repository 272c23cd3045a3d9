package report

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pubsummary/pkg/contracts/domain"
)

type docxParagraph struct {
	Style string
	Text  string
}

// readDOCX unpacks the paragraphs of word/document.xml.
func readDOCX(t *testing.T, data []byte) []docxParagraph {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var body []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		body, err = io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
	}
	require.NotEmpty(t, body, "word/document.xml missing")

	var doc struct {
		Paragraphs []struct {
			Style struct {
				Val string `xml:"val,attr"`
			} `xml:"pPr>pStyle"`
			Runs []struct {
				Text string `xml:"t"`
			} `xml:"r"`
		} `xml:"body>p"`
	}
	require.NoError(t, xml.Unmarshal(body, &doc))

	out := make([]docxParagraph, 0, len(doc.Paragraphs))
	for _, p := range doc.Paragraphs {
		var text string
		for _, r := range p.Runs {
			text += r.Text
		}
		out = append(out, docxParagraph{Style: p.Style.Val, Text: text})
	}
	return out
}

func TestDOCXWriter(t *testing.T) {
	part := partition(
		[]domain.Record{{Year: 2020, FacultyName: "Ada & Co", Title: "<Graphs>", Venue: "V1"}},
		nil,
	)
	doc := Render("Publication Summary Report", part)

	w := &DOCXWriter{now: func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }}
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, doc))

	paragraphs := readDOCX(t, buf.Bytes())
	assert.Equal(t, []docxParagraph{
		{Style: "Title", Text: "Publication Summary Report"},
		{Style: "Heading1", Text: "Journals"},
		{Text: `2020 - Ada & Co: "<Graphs>" (V1)`},
		{Style: "Heading1", Text: "Conferences"},
		{Text: "No records found."},
	}, paragraphs)
}

func TestDOCXWriterPackageParts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewDOCXWriter().Write(&buf, Render("", partition(nil, nil))))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/document.xml",
	}, names)
}

func TestDOCXWriterDeterministicWithFixedClock(t *testing.T) {
	fixed := func() time.Time { return time.Unix(0, 0) }
	doc := Render("T", partition(nil, nil))

	var a, b bytes.Buffer
	require.NoError(t, (&DOCXWriter{now: fixed}).Write(&a, doc))
	require.NoError(t, (&DOCXWriter{now: fixed}).Write(&b, doc))
	assert.Equal(t, readDOCX(t, a.Bytes()), readDOCX(t, b.Bytes()))
}
