package parser

import (
	"io"

	"github.com/knowledgehub/chapterize/internal/pagedoc"
)

// TextParser handles plain text files. Form feeds mark native page breaks;
// without them the text is paginated into fixed-size synthetic pages.
type TextParser struct {
	Options Options
}

func (p *TextParser) Parse(r io.Reader, filename string) (*pagedoc.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return &pagedoc.Document{
		Title:  baseTitle(filename),
		Source: filename,
		Pages:  pagesFromText(string(src), p.Options.linesPerPage(), "text"),
	}, nil
}
