package node

func (t Type) String() string {
	switch t {
	case DefinitionType:
		return "definition"
	case ElementType:
		return "element"
	case CommentType:
		return "comment"
	case TextType:
		return "text"
	case AttributeType:
		return "attribute"
	default:
		return "invalid"
	}
}
