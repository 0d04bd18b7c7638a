package vm

import (
	"strings"
	"testing"
)

func FuzzParse(f *testing.F) {
	f.Add("mov a, 5\ninc a\nend\n")
	f.Add("msg 'a, b: ', x, ', ', y\n")
	f.Add("loop:\n  cmp a, b\n  jne loop\n")
	f.Add("; only a comment\n\n\t\n")

	f.Fuzz(func(t *testing.T, source string) {
		asm := &Assembler{}

		prog, err := asm.Parse(strings.NewReader(source))
		if err == nil && prog == nil {
			t.Fatal("nil program without error")
		}
		if err != nil && prog != nil {
			t.Fatal("program returned alongside error")
		}
	})
}
