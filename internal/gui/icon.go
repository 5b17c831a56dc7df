package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const appIconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 256 256">
<defs><linearGradient id="g" x1="0" y1="0" x2="1" y2="0">
<stop offset="0" stop-color="#60a5fa"/><stop offset="1" stop-color="#a855f7"/></linearGradient></defs>
<rect width="256" height="256" rx="48" fill="url(#g)"/>
<path d="M56 72h88v16h-28c-4 26-14 48-30 66 10 8 22 14 36 18l-6 16c-16-5-30-12-42-22-12 10-26 17-42 22l-6-16c14-4 26-10 36-18-9-10-16-21-21-34h18c4 9 9 17 15 24 11-14 19-31 22-56H56z" fill="#fff"/>
<path d="M176 112h20l44 104h-20l-10-26h-48l-10 26h-20zm-8 62h36l-18-46z" fill="#fff"/>
</svg>`

const sunSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="#000">
<circle cx="12" cy="12" r="4.5"/>
<g stroke="#000" stroke-width="2" stroke-linecap="round">
<line x1="12" y1="1.5" x2="12" y2="4"/><line x1="12" y1="20" x2="12" y2="22.5"/>
<line x1="1.5" y1="12" x2="4" y2="12"/><line x1="20" y1="12" x2="22.5" y2="12"/>
<line x1="4.6" y1="4.6" x2="6.3" y2="6.3"/><line x1="17.7" y1="17.7" x2="19.4" y2="19.4"/>
<line x1="4.6" y1="19.4" x2="6.3" y2="17.7"/><line x1="17.7" y1="6.3" x2="19.4" y2="4.6"/>
</g></svg>`

const moonSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="#000">
<path d="M20.5 14.6A8.5 8.5 0 0 1 9.4 3.5a8.5 8.5 0 1 0 11.1 11.1z"/>
</svg>`

// GetAppIcon returns the application icon as a Fyne resource
func GetAppIcon() fyne.Resource {
	return fyne.NewStaticResource("linguist.svg", []byte(appIconSVG))
}

// iconFor maps a view icon name to a themed resource
func iconFor(name string) fyne.Resource {
	switch name {
	case "sun":
		return theme.NewThemedResource(fyne.NewStaticResource("sun.svg", []byte(sunSVG)))
	case "moon":
		return theme.NewThemedResource(fyne.NewStaticResource("moon.svg", []byte(moonSVG)))
	case "mic":
		return theme.MediaRecordIcon()
	case "swap":
		return theme.ViewRefreshIcon()
	default:
		return theme.QuestionIcon()
	}
}
