package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isUnlocked() bool
	Init(ctx context.Context) error
	Unlock(ctx context.Context) error
	Lock(ctx context.Context) error
	ListFolders(ctx context.Context) error
	AddFolder(ctx context.Context, args []string) error
	RenameFolder(ctx context.Context, args []string) error
	DeleteFolder(ctx context.Context, args []string) error
	Sync(ctx context.Context) error
	ClearFolders(ctx context.Context) error
	AddItem(ctx context.Context, args []string) error
	ListItems(ctx context.Context) error
}

// runREPL reads commands from scanner until EOF, "exit" or "quit".
//
//	Locked:
//	  help, init, unlock, exit | quit
//
//	Unlocked:
//	  folders | l              list folders
//	  add <name>               create a folder
//	  rename <id> <name>       rename a folder
//	  delete <id>              delete a folder, its items move to "no folder"
//	  sync                     replace local folders with the server's
//	  clear                    remove local folders
//	  additem [type] <folder|-> <name>
//	                           add an item; type is login, note (default) or credit_card
//	  items                    list items
//	  lock
//
// Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fv %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isUnlocked() {
				printlnFn("Available commands: folders (l), add, rename, delete, sync, clear, additem, items, lock, exit")
			} else {
				printlnFn("Available commands: init, unlock, exit")
			}
		case "init":
			err = a.Init(ctx)
		case "unlock":
			err = a.Unlock(ctx)
		case "lock":
			err = a.Lock(ctx)
		case "folders", "l":
			err = a.ListFolders(ctx)
		case "add":
			err = a.AddFolder(ctx, args)
		case "rename":
			err = a.RenameFolder(ctx, args)
		case "delete":
			err = a.DeleteFolder(ctx, args)
		case "sync":
			err = a.Sync(ctx)
		case "clear":
			err = a.ClearFolders(ctx)
		case "additem":
			err = a.AddItem(ctx, args)
		case "items":
			err = a.ListItems(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
