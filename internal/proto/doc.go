// Package proto is the wire contract between the foldervault client and the
// folder sync service.
//
// The service is described by FolderService_ServiceDesc and carried over gRPC
// with the standard protobuf codec. Messages are protobuf well-known types:
// folders and token pairs travel as google.protobuf.Struct, identifiers as
// google.protobuf.StringValue and folder lists as google.protobuf.ListValue.
// Folder and Tokens convert between those messages and Go values and are the
// only place where field names are spelled out.
//
// Methods
//
//	Ping          Empty        -> StringValue ("OK")
//	RefreshToken  StringValue  -> Struct{access_token, refresh_token}
//	CreateFolder  Struct{name} -> Struct{id, name, revision_date}
//	UpdateFolder  Struct{id, name} -> Struct{id, name, revision_date}
//	DeleteFolder  StringValue  -> Empty
//	ListFolders   Empty        -> ListValue of folder Structs
package proto
