/*
Package logging offers a client for emitting log entries from guest code to
the host's logging subsystem over xcall.

The package exposes a small interface with one method per severity (Error,
Warning, Info, Debug). Each call becomes one xcall to the matching host
function (logError, logWarning, logInfo, logDebug) carrying the text in a
single payload field, and returns true only when the host replies with a
positive success value. The same rule applies to every severity; earlier
bridges that always reported success for warnings were wrong.

Hosts differ in the name of the payload field. FieldNames configures it per
severity; RevisionMessage (the default), RevisionSeverity and RevisionText
cover the known variants.
*/
package logging
