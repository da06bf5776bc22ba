// Package report renders the rules of the active profile.
//
// A Report is built once from the loaded profile and handed to a Renderer.
// The text renderer prints the classic listing:
//
//	Complex Modifications for profile: "Default":
//
//	[1] f13 to L-command+L-control+L-option+L-shift+a for VoltPad
//	    Device: VoltPad (VendorID: 65195, ProductID: 6)
//	    From: Any+f13
//	    To: L-command+L-control+L-option+L-shift+a
//
// The term renderer prints the same structure with lipgloss styles; json and
// yaml emit the Report value itself.
package report
