/*
Package xcall issues cross calls to named host functions.

A call is a CallRequest: the remote function name plus a flat list of string
fields. Encode turns it into Store text of the form

	message = "disk full", xcall = { function = "logError" }

which an Invoker hands to the host. The host answers with Store text that is
decoded into a Reply; Reply.Success applies the xcall success rule (an integer
"success" field greater than zero).

Client ties the steps together. Client.Call reports encoding problems as an
EncodingError; everything that goes wrong on the host side (transport errors,
empty or garbled replies, unknown functions) only ever shows up in the Reply.
Client.Dispatch folds the whole exchange into a single bool.
*/
package xcall
