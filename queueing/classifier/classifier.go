// Package classifier selects the queue a packet goes to.
package classifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/radiosim/phy/packet"
)

// A Classifier returns the index of the queue a packet belongs to.
type Classifier interface {
	Classify(p *packet.Packet) (int, error)
}

// LabelClassifier maps packet labels to queue indices.
type LabelClassifier struct {
	labelsToIndex map[string]int
	defaultIndex  int
}

// NewLabelClassifier creates a classifier from a mapping such as
// "voice 0 video 1". Packets without a mapped label go to defaultIndex. A
// negative defaultIndex makes such packets an error.
func NewLabelClassifier(
	mapping string,
	defaultIndex int,
) (*LabelClassifier, error) {
	tokens := strings.Fields(mapping)
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf(
			"label mapping %q must be pairs of label and index", mapping)
	}

	c := &LabelClassifier{
		labelsToIndex: make(map[string]int),
		defaultIndex:  defaultIndex,
	}

	for i := 0; i < len(tokens); i += 2 {
		index, err := strconv.Atoi(tokens[i+1])
		if err != nil {
			return nil, fmt.Errorf("index of label %s: %w", tokens[i], err)
		}

		if index < 0 {
			return nil, fmt.Errorf("index of label %s is negative", tokens[i])
		}

		c.labelsToIndex[tokens[i]] = index
	}

	return c, nil
}

// Classify returns the index of the first label of the packet that has a
// mapping, or the default index.
func (c *LabelClassifier) Classify(p *packet.Packet) (int, error) {
	for _, label := range p.Labels() {
		if index, found := c.labelsToIndex[label]; found {
			return index, nil
		}
	}

	if c.defaultIndex < 0 {
		return 0, fmt.Errorf("packet %s (%s) has no classified label",
			p.Name, p.ID)
	}

	return c.defaultIndex, nil
}

// MaxIndex returns the largest index the classifier can return.
func (c *LabelClassifier) MaxIndex() int {
	m := c.defaultIndex
	for _, index := range c.labelsToIndex {
		m = max(m, index)
	}

	return m
}
