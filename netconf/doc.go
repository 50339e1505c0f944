// Package netconf loads the TOML settings file that planning tools
// share: the network conventions a basin is edited under and the layout
// parameters its diagrams are drawn with. Keeping these in one file
// means every tool that touches the same basin builds networks the same
// way.
//
// Settings convert to option slices (NetworkOptions, LayoutOptions), so
// call sites stay expressed in the underlying packages' own vocabulary:
//
//	cfg, err := netconf.Load("streamnet.toml")
//	...
//	net, err := netlist.Build(doc, cfg.NetworkOptions()...)
//	rep, err := layout.Interpolate(net, cfg.LayoutOptions()...)
//
// Absent keys keep their defaults; present keys are validated at load
// time so a bad file fails at startup, not mid-edit.
package netconf
