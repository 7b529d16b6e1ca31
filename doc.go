// Package booklab provides two line-oriented terminal notebooks.
//
// BookLAB manages files in a working directory and PyBook runs Python
// cells. Both read one command per cell, classify it against a fixed
// command table and run a single filesystem, subprocess or formatting
// action through the dispatcher:
//
//	srv, _ := booklab.New(command.BookLab)
//	defer srv.Close(ctx)
//	_ = srv.Run(ctx)
//
// Library users may also feed lines directly with Service.Execute.
package booklab
