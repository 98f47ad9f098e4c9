package component

import "github.com/alexisbeaulieu97/inkwell/internal/style"

// Builtin returns the component entries for the kiosk's stock screens.
func Builtin() *Registry {
	return NewRegistry([]Entry{
		{
			Key:         "home.toolbar",
			Description: "Top-level action bar on the home screen",
			Base: style.Fragment{
				"height":  "56px",
				"display": "flex",
			},
			Commands: []string{"light", "flat"},
		},
		{
			Key:         "scan.preview",
			Description: "Live scanner preview pane",
			Base: style.Fragment{
				"aspectRatio": "1.414",
				"background":  "#f2f2f7",
			},
			Commands: []string{"rounded glass panel", "soft shadow"},
		},
		{
			Key:         "scan.controls",
			Description: "Scan trigger and paper-size controls",
			Commands:    []string{"light", "compact"},
		},
		{
			Key:         "print.queue",
			Description: "Pending print jobs list",
			Base: style.Fragment{
				"overflow": "scroll",
			},
			Commands: []string{"light", "compact", "soft shadow"},
		},
		{
			Key:         "print.queue.item",
			Description: "Single job row inside the print queue",
			Commands:    []string{"rounded", "compact"},
		},
		{
			Key:         "print.settings.panel",
			Description: "Copies, duplex and color settings drawer",
			Base: style.Fragment{
				"width": style.Fragment{
					"handset": "100%",
					"desk":    "420px",
				},
			},
			Commands: []string{"rounded glass panel", "spacious"},
		},
		{
			Key:         "device.status",
			Description: "Printer and scanner connectivity banner",
			Commands:    []string{"muted", "compact"},
		},
		{
			Key:         "device.status.alert",
			Description: "Connectivity banner in its error state",
			Commands:    []string{"warning tint", "soft shadow"},
		},
	})
}
