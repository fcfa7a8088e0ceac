package enum

//go:generate go run github.com/go-pkgz/enum@latest -type mode -lower
type mode int

const (
	modeSpeak mode = iota
	modeStop
)

//go:generate go run github.com/go-pkgz/enum@latest -type trigger -lower
type trigger int

const (
	triggerToggle  trigger = iota
	triggerNotifyA         // enum:alias=a,notify-a
	triggerNotifyB         // enum:alias=b,notify-b
)

//go:generate go run github.com/go-pkgz/enum@latest -type color -lower
type color int

const (
	colorRed color = iota
	colorGreen
	colorLightGreen // enum:alias=light-green
	colorViolet
	colorGray       // enum:alias=grey
	colorDarkBlue   // enum:alias=dark-blue
	colorDarkPurple // enum:alias=dark-purple
	colorBlue
	colorOrange
)

//go:generate go run github.com/go-pkgz/enum@latest -type storage -lower
type storage int

const (
	storageMemory   storage = iota // enum:alias=
	storageSQLite                  // enum:alias=sqlite
	storagePostgres                // enum:alias=postgres,postgresql
)

//go:generate go run github.com/go-pkgz/enum@latest -type theme -lower
type theme int

const (
	themeSystem theme = iota // enum:alias=
	themeLight
	themeDark
)
