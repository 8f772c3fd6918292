// Package transport discovers and opens the serial channels used to reach
// attenuator units.
//
// Target units enumerate as USB CDC-ACM interfaces, so discovery is a plain
// listing of the host's serial devices filtered to paths containing the
// configured match token (default "ACM"). No probing beyond the listing call
// takes place; whether a matched device actually speaks the attenuator
// protocol is established later, when the instrument session issues its
// first query.
//
// Each port is opened exclusively; at most one open channel per device path
// exists at any time.
package transport
