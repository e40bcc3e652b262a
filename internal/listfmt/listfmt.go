// Package listfmt converts freeform posting text into small HTML fragments.
// It recognizes bullet lists, numbered lists and numbered items followed by
// bullet sub-items; everything else passes through as line-broken text.
package listfmt

import (
	"html"
	"regexp"
	"strings"
)

var (
	bulletLine   = regexp.MustCompile(`^[*\-•+]\s+(.+)$`)
	numberedLine = regexp.MustCompile(`^(\d+)[.)]\s+(.+)$`)
)

type mode int

const (
	modeNone mode = iota
	modeUnordered
	modeOrdered
)

// mainItem is one numbered entry plus the bullet lines attached to it.
type mainItem struct {
	text string
	subs []string
}

// Format renders text as an HTML fragment containing only <ul>, <ol start=N>,
// <li> and <br> tags plus escaped literal text. Empty or whitespace-only
// input returns "".
//
// The pass is strictly line by line. A numbered line opens (or extends) an
// ordered list whose start attribute is the first number seen; bullet lines
// inside an ordered list attach to the most recent numbered item as a nested
// <ul>. Plain lines close whatever list is open and emit "line<br>" (a blank
// line emits a bare <br>).
func Format(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	var out strings.Builder
	st := state{out: &out}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if m := numberedLine.FindStringSubmatch(line); m != nil {
			st.numbered(m[1], html.EscapeString(m[2]))
			continue
		}
		if m := bulletLine.FindStringSubmatch(line); m != nil {
			st.bullet(html.EscapeString(m[1]))
			continue
		}
		st.plain(html.EscapeString(line))
	}
	st.close()

	return out.String()
}

type state struct {
	out *strings.Builder

	mode mode

	// ordered-list accumulation
	start  string // number attached to the list's first line
	curNum string
	cur    mainItem
	items  []mainItem
}

func (s *state) numbered(num, content string) {
	if s.mode == modeOrdered {
		if num == s.curNum {
			// Repeated number: continuation of the same main item.
			s.cur.text += "<br>" + content
			return
		}
		// Any new number starts a new main item, sequential or not.
		s.items = append(s.items, s.cur)
		s.cur = mainItem{text: content}
		s.curNum = num
		return
	}

	s.close()
	s.mode = modeOrdered
	s.start = num
	s.curNum = num
	s.cur = mainItem{text: content}
	s.items = nil
}

func (s *state) bullet(content string) {
	if s.mode == modeOrdered {
		// Sub-item of the numbered item above, not a new top-level list.
		s.cur.subs = append(s.cur.subs, content)
		return
	}
	if s.mode != modeUnordered {
		s.close()
		s.mode = modeUnordered
		s.out.WriteString("<ul>")
	}
	s.out.WriteString("<li>" + content + "</li>")
}

func (s *state) plain(line string) {
	s.close()
	if line == "" {
		s.out.WriteString("<br>")
		return
	}
	s.out.WriteString(line + "<br>")
}

// close flushes whatever list is open and returns the state to plain text.
func (s *state) close() {
	switch s.mode {
	case modeUnordered:
		s.out.WriteString("</ul>")
	case modeOrdered:
		s.items = append(s.items, s.cur)
		s.out.WriteString(`<ol start="` + s.start + `">`)
		for _, it := range s.items {
			s.out.WriteString("<li>" + it.text)
			if len(it.subs) > 0 {
				s.out.WriteString("<ul>")
				for _, sub := range it.subs {
					s.out.WriteString("<li>" + sub + "</li>")
				}
				s.out.WriteString("</ul>")
			}
			s.out.WriteString("</li>")
		}
		s.out.WriteString("</ol>")
		s.items = nil
		s.cur = mainItem{}
	}
	s.mode = modeNone
}
