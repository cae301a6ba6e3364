package main

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/lost-woods/pokerdeck/src/deck"
	"github.com/lost-woods/pokerdeck/src/rng"
)

var outputRe = regexp.MustCompile(
	`^\{"hand":\[\{"suit":"(♠|♥|♦|♣)","rank":"(A|K|Q|J|10|[2-9])"\},\{"suit":"(♠|♥|♦|♣)","rank":"(A|K|Q|J|10|[2-9])"\}\],"remaining":50\}\n$`)

type firstSource struct{}

func (firstSource) Intn(int) (int, error) { return 0, nil }

func TestRun_SystemSource(t *testing.T) {
	r, h := rng.NewSystem()
	for i := 0; i < 100; i++ {
		var out bytes.Buffer
		if err := run(&out, rng.NewUniform(r, h)); err != nil {
			t.Fatalf("run: %v", err)
		}
		m := outputRe.FindStringSubmatch(out.String())
		if m == nil {
			t.Fatalf("unexpected output: %q", out.String())
		}
		if m[1] == m[3] && m[2] == m[4] {
			t.Fatalf("same card drawn twice: %q", out.String())
		}
	}
}

func TestRun_FirstIndexEveryTime(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, firstSource{}); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := `{"hand":[{"suit":"♠","rank":"A"},{"suit":"♠","rank":"K"}],"remaining":50}` + "\n"
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}

var _ deck.Source = firstSource{}
