// Package protocol provides the object representation of a socket.io packet as
// seen by a client once the transport has framed and classified it.
//
// A socket.io packet travels inside an engine.io message packet. On the wire it
// looks like:
//
//     4<packet type>[<# of binary attachments>-][<namespace>,][<acknowledgment id>][JSON-stringified payload without binary]
//
// or as a real example:
//
//     432["ok",42]
//
// which this package represents with the API:
//
//     Packet.Engine()  // message
//     Packet.Type()    // ack, true
//     Packet.AckID()   // 2, true
//     Packet.Data()    // ["ok",42]
//
// Reading the wire format is the transport's job; this package only carries
// the result.
package protocol
