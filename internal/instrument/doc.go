// Package instrument implements the line-based text protocol spoken by a
// single attenuator unit over its serial channel.
//
// # Protocol
//
// Every exchange is one ASCII command line followed by exactly one ASCII
// response line, both terminated by the configured sequence (CRLF by
// default):
//
//	ATT:ATTTabGet?       -> comma-separated list of supported values
//	ATT:ATTGetCurVal?    -> current attenuation (dB)
//	ATT:ATTSet? <float>  -> set attenuation, echoes the new value
//	ATT:ATTSetUp?        -> step one position up, echoes the new value
//	ATT:ATTSetDown?      -> step one position down, echoes the new value
//
// The unit cannot multiplex overlapping commands, so a Session must not be
// used concurrently; callers serialise access per session.
//
// # Usage
//
//	conn, err := transport.Open("/dev/ttyACM0", 115200)
//	if err != nil {
//	    return err
//	}
//	sess := instrument.NewSession("/dev/ttyACM0", conn, time.Second, "\r\n")
//	defer sess.Close()
//
//	values, err := sess.AllowedValues()
package instrument
