// File: doc.go
// Title: Log Package Documentation
// Description: Documents the structured logging system used by the
//              ltlspec toolkit.

/*
Package log provides structured, leveled logging for the ltlspec toolkit.

A Logger carries a minimum level, an output format and persistent context
fields. The WithX builders return clones, so a component can derive its
own logger without affecting others:

	logger := log.GetDefault().WithField("component", "parser")
	logger.Debug("parsing formula", log.Fields{"length": len(input)})

Formats: JSON for machine consumption, text for files, console (colored)
for interactive use.
*/
package log
