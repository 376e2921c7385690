package naivebayes_test

import (
	"testing"

	"github.com/fwojciec/sitegraph/naivebayes"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lowercases", "Shopping Cart", []string{"shopping", "cart"}},
		{"drops punctuation and digits", "save 20% on checkout!", []string{"save", "checkout"}},
		{"drops stop words", "the best of the blog", []string{"best", "blog"}},
		{"drops single characters", "a b cd", []string{"cd"}},
		{"folds accents", "Café résumé", []string{"cafe", "resume"}},
		{"splits contractions", "what's happening", []string{"happening"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, naivebayes.Tokenize(tt.text))
		})
	}
}

func TestTerms(t *testing.T) {
	t.Parallel()

	assert.Nil(t, naivebayes.Terms(nil))
	assert.Equal(t,
		[]string{"add", "cart", "checkout", "add cart", "cart checkout"},
		naivebayes.Terms([]string{"add", "cart", "checkout"}),
	)
}
