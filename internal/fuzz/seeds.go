package fuzztests

import "testing"

const maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса

// seeds cover every tokenizer rule and every diagnostic code.
var seeds = []string{
	"",
	"let total = a + b;",
	"function add(a, b) {\n  return a + b;\n}\n",
	"const s = \"esc \\\" quote\"; let t = 'open",
	"`template ${x}`",
	"3.14.15 0x1F 0b101 0o17 42",
	"a ?? b?.c ... d >>>= e !== f => g",
	"}{)(][",
	"((([[[{{{",
	"retrun whlie fucntion",
	"naïve_ñame $dollar _under",
	"@decorator #hash ~ ^ \\ |",
	"\t \r\n     ​",
	"\x00\x01\x7f\u0085",
	"\xff\xfe\xc3",
	"emoji 😀 and 日本語",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range seeds {
		f.Add(clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
