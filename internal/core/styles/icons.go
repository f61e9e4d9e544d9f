package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconBook     = "\U000F00BE" // nf-md-book_open_variant
	IconImage    = "\U000F02E9" // nf-md-image
	IconQuiz     = "\U000F02D7" // nf-md-help_circle
	IconCategory = ""     // nf-fa-tag
)

// Notification icons
var (
	IconNotifyInfo    = "" // nf-fa-info_circle
	IconNotifyWarning = "" // nf-fa-warning
	IconNotifyError   = "" // nf-fa-times_circle
)
