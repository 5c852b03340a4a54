package arff

// Collector is an in-memory Formatter. It retains header comments and
// parsed instances for callers that want the dataset as data rather than
// rendered output.
type Collector struct {
	Header     []string
	Relation   string
	Attributes []*Attribute
	Instances  []*Instance
}

var _ Formatter = (*Collector)(nil)

func (c *Collector) FormatComment(text string) error {
	c.Header = append(c.Header, text)
	return nil
}

func (c *Collector) FormatCreate(relation string, attrs []*Attribute) error {
	c.Relation = relation
	c.Attributes = attrs
	return nil
}

func (c *Collector) FormatInstance(relation string, inst *Instance) error {
	c.Instances = append(c.Instances, inst)
	return nil
}
