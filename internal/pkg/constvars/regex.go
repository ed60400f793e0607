package constvars

const (
	RegexTimeHHMM = `^([01][0-9]|2[0-3]):[0-5][0-9]$`
	RegexDateYMD  = `^\d{4}-\d{2}-\d{2}$`
)
