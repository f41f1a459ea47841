package beaver

func NewAttribute(name, value string) *Attribute {
	return &Attribute{name: name, value: value}
}

func (a *Attribute) Name() string {
	return a.name
}

func (a *Attribute) Value() string {
	return a.value
}
