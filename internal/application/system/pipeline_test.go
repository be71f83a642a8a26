package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipeline_RunsInOrder(t *testing.T) {
	var got []string
	record := func(name string) func(float64) {
		return func(float64) { got = append(got, name) }
	}

	p := NewPipeline(Stage{Name: "a", Run: record("a")})
	p.Add("b", record("b"))
	p.Add("c", record("c"))

	p.Tick(1.0 / 60)
	p.Tick(1.0 / 60)

	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, got)
	assert.Equal(t, []string{"a", "b", "c"}, p.Names())
}

func TestPipeline_PassesDT(t *testing.T) {
	var seen float64
	p := NewPipeline()
	p.Add("dt", func(dt float64) { seen = dt })

	p.Tick(0.5)
	assert.Equal(t, 0.5, seen)
}
