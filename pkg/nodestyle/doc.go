/*
Package nodestyle provides connection styling for node-graph editors.

# Overview

A ConnectionStyle carries the colors, widths and point sizes used to draw
connections between node ports, plus a per-style palette that gives every
connection type its own color. Settings start from an embedded default
document and can be overlaid by JSON or YAML:

	style, err := nodestyle.NewFromJSON(`{
	    "ConnectionStyle": {
	        "NormalColor": "#336699",
	        "LineWidth": 2.5,
	        "UseDataDefinedColors": true
	    }
	}`)
	if err != nil {
	    log.Fatal(err)
	}

	width := style.LineWidth()                // 2.5
	halo := style.SelectedHaloColor()         // default: orange
	number := style.ConnectionColor("Number") // assigned on first use

Absent and null keys keep the value beneath them. A value that cannot be
used is logged and skipped. Colors are written as "#rgb", "#rrggbb",
"#aarrggbb", an SVG color name, or a [r, g, b] array.

# Type Colors

When UseDataDefinedColors is set, each connection type gets a color chosen
to stay visually distinct from every type colored before it. The choice is
deterministic for a given order of first requests and is kept for the
lifetime of the style:

	c, ok := style.LookupTypeColor("Text") // never assigns
	c = style.AssignTypeColor("Text")      // assigns if needed

Preset colors can be listed in the document under "TypeColors":

	{"ConnectionStyle": {"TypeColors": {"Error": "red"}}}

See package palette for the search itself.

# Themes

Named overlay documents can be kept in a theme.Store and applied with
NewFromTheme. Themes store configuration only, never assigned type colors.

# Observability

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	style := nodestyle.New(
	    nodestyle.WithLogger(logger),
	    nodestyle.WithMetrics(true),
	)

Metrics use the global OpenTelemetry meter provider.
*/
package nodestyle
