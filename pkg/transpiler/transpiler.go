package transpiler

import (
	"bytes"
	"fmt"
	"time"

	"ctrans/pkg/container"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var closeToOpen = map[string]string{
	")": "(",
	"]": "[",
	"}": "{",
}

var openDelim = map[string]bool{
	"(": true,
	"[": true,
	"{": true,
}

// Transpiler runs the tokenize -> parse -> generate pipeline over one input.
// depth bounds the delimiter-nesting stack; opens past it saturate silently
// and matching for those levels is skipped.
type Transpiler struct {
	depth int
	wr    Writer
	stats *Stats
}

func New(depth int) *Transpiler {
	return &Transpiler{depth: depth, stats: NewStats()}
}

func (t *Transpiler) SetWriter(writer Writer) {
	t.wr = writer
}

func (t *Transpiler) Run(src []byte) error {
	start := time.Now()

	tokens := container.NewSyncList[Token]()
	nesting := container.NewSyncStack[Token](t.depth)

	log.Infof("tokenizing %d bytes", len(src))

	ch := make(chan Token, 128)
	eg := errgroup.Group{}
	eg.Go(func() error {
		defer close(ch)
		sc := NewScanner()
		sc.Feed(src)
		for {
			tok, ok := sc.TryNext()
			if !ok {
				return nil
			}
			ch <- tok
		}
	})
	eg.Go(func() error {
		depth := 0
		var perr error
		for tok := range ch {
			// keep draining after a parse error so the producer can finish
			if perr != nil {
				continue
			}
			tokens.Append(tok)
			t.stats.Record(tok)
			if tok.Kind != TokenPunct {
				continue
			}
			if openDelim[tok.Text] {
				depth++
				nesting.Push(tok)
				continue
			}
			open, closes := closeToOpen[tok.Text]
			if !closes {
				continue
			}
			if depth == 0 {
				perr = fmt.Errorf("line %d: unexpected %q", tok.Line, tok.Text)
				continue
			}
			// opens past the tracked depth were dropped, nothing to pop
			if depth <= nesting.Cap() {
				mate, ok := nesting.Pop()
				if !ok || mate.Text != open {
					perr = fmt.Errorf("line %d: %q does not close %s", tok.Line, tok.Text, mate)
					continue
				}
			}
			depth--
		}
		if perr != nil {
			return perr
		}
		if depth != 0 {
			return fmt.Errorf("%d unclosed delimiters at end of input", depth)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	log.Infof("parsed %d tokens", t.stats.Tokens())

	log.Infof("generating code")
	out := t.generate(tokens)

	log.Infof("writing output, %d bytes", len(out))
	if t.wr != nil {
		if err := t.wr.Emit(out); err != nil {
			return err
		}
	}

	t.stats.Report(time.Since(start))
	return nil
}

// generate re-emits the token stream in source order with normalized
// spacing. Position zero of the list holds the newest token, so it walks
// the positions backwards.
func (t *Transpiler) generate(tokens *container.SyncList[Token]) []byte {
	n := 0
	for {
		if _, ok := tokens.Get(n); !ok {
			break
		}
		n++
	}

	var b bytes.Buffer
	line := 0
	for i := n - 1; i >= 0; i-- {
		tok, _ := tokens.Get(i)
		if line != 0 {
			if tok.Line > line {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(tok.Text)
		line = tok.Line
	}
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	return b.Bytes()
}
