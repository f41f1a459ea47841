package treebuilder

var modeNames = [maxMode]string{
	ModeInitial:    "initial",
	ModeBeforeHTML: "beforehtml",
	ModeBeforeHead: "beforehead",
	ModeInHead:     "inhead",
	ModeAfterHead:  "afterhead",
	ModeInBody:     "inbody",
	ModeText:       "text",
	ModeAfterBody:  "afterbody",
}

func (m Mode) String() string {
	if m < 0 || m >= maxMode {
		return "unknown"
	}
	return modeNames[m]
}
