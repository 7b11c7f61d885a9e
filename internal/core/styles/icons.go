package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconStar       = "★"
	IconStarEmpty  = "☆"
	IconCamera     = "󰄀" // nf-md-camera
	IconScissors   = "" // nf-fa-scissors
	IconPerson     = ""
	IconSparkle    = "✦"
	IconDot        = "•"
	IconIndicator  = "▔"
	IconAllProfile = "󰡉" // nf-md-account_group
)
