// Package devotional provides the fixed content of the daily devotional.
package devotional

import (
	"time"

	"paodiario/internal/ptbr"
)

// Devotional is the verse and reflection shown on the page.
type Devotional struct {
	Heading         string
	Reference       string
	Verse           string
	ReflectionTitle string
	Reflection      []string // paragraphs
}

// Daily returns the devotional of the day. The content is fixed.
func Daily() Devotional {
	return Devotional{
		Heading:   "Devocional do Dia",
		Reference: "João 3:16",
		Verse: "Porque Deus amou o mundo de tal maneira que deu o seu Filho unigênito, " +
			"para que todo aquele que nele crê não pereça, mas tenha a vida eterna.",
		ReflectionTitle: "Reflexão",
		Reflection: []string{
			"O amor de Deus é incondicional e eterno. Ele não espera que sejamos perfeitos " +
				"para nos amar. Pelo contrário, é justamente em nossa imperfeição que Seu amor " +
				"se manifesta de forma mais poderosa.",
			"Este versículo nos lembra que o sacrifício de Jesus foi motivado por um amor " +
				"tão profundo que transcende nossa compreensão humana. É um convite diário para " +
				"aceitarmos este amor e compartilhá-lo com aqueles ao nosso redor.",
			"Hoje, reflita sobre como você pode ser um reflexo deste amor incondicional " +
				"em suas ações, palavras e pensamentos.",
		},
	}
}

// DateLine returns the long-form date shown under the heading. It is derived
// from now on every call and never stored.
func (d Devotional) DateLine(now time.Time) string {
	return ptbr.LongDate(now)
}
