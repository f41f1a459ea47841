package tokenizer

var stateNames = [maxState]string{
	StateData:                   "data",
	StateStartTag:               "starttag",
	StateMarkup:                 "markup",
	StateTagName:                "tagname",
	StateSelfClosing:            "selfclosing",
	StateEndTag:                 "endtag",
	StateBeforeAttributeName:    "beforeattributename",
	StateAttributeName:          "attributename",
	StateBeforeAttributeValue:   "beforeattributevalue",
	StateAttributeValue:         "attributevalue",
	StateAfterAttributeValue:    "afterattributevalue",
	StateCommentStart:           "commentstart",
	StateCommentStartDash:       "commentstartdash",
	StateComment:                "comment",
	StateCommentEndDash:         "commentenddash",
	StateCommentEnd:             "commentend",
	StateDoctype:                "doctype",
	StateRootDeclaration:        "rootdeclaration",
	StateKeyword:                "keyword",
	StateBeforePublicIdentifier: "beforepublicidentifier",
	StatePublicIdentifier:       "publicidentifier",
	StateAfterPublicIdentifier:  "afterpublicidentifier",
	StateBeforeSystemIdentifier: "beforesystemidentifier",
	StateSystemIdentifier:       "systemidentifier",
	StateAfterSystemIdentifier:  "aftersystemidentifier",
	StateText:                   "text",
}

func (s State) String() string {
	if s < 0 || s >= maxState {
		return "unknown"
	}
	return stateNames[s]
}
