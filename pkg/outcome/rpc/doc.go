// Package rpc recognizes JSON-RPC reply envelopes by shape. It does not
// speak the protocol; it only decides whether a decoded or raw reply is a
// success reply, an error reply, or neither, with the member rules applied
// in a fixed order.
//
// Key constructs:
// - Envelope/Payload/ErrorObject/ErrorData: the reply data model
// - IsSuccess/IsError/Classify/ClassifyBytes: ordered shape predicates
// - AsErrorObject: pull a recognizable error payload out of a failure value
// - NewSuccess/NewError: mint well-formed replies
// - Kind registry: name error families and build their payloads
package rpc
