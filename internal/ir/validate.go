package ir

// Validate checks p against the same rules the Builder enforces by replaying
// every declaration, types first. It returns the first violation found.
func (p *Program) Validate() error {
	b := NewBuilder()
	for _, t := range p.Types {
		if err := b.DeclareType(t.Name); err != nil {
			return err
		}
		for _, f := range t.Fields {
			if err := b.AddField(f); err != nil {
				return err
			}
		}
	}
	for _, inst := range p.Instances {
		if err := b.DeclareInstance(inst); err != nil {
			return err
		}
	}
	return nil
}
