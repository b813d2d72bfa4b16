// Package stdlib pre-populates a fresh Environment with xb's native
// built-ins before a script runs, the host-population seam spec.md §6
// reserves for the driver. Grounded on the teacher's natives.go, where a
// native (GlobalFunctionClock) is a small Go value wired into the
// interpreter's globals under a bare name; here every native is instead a
// value.Function built with value.NewNative, since xb's Function Value
// already models "callable" directly.
package stdlib

import (
	"fmt"
	"strings"
	"time"

	"github.com/mcjo163/xb/internal/database"
	"github.com/mcjo163/xb/internal/environment"
	"github.com/mcjo163/xb/internal/hostutil"
	"github.com/mcjo163/xb/internal/netio"
	"github.com/mcjo163/xb/internal/value"
	"github.com/mcjo163/xb/internal/xberr"
)

// Install declares every built-in as a const binding on env. It's meant to
// be called once, on the top-level Environment, before the program runs.
func Install(env *environment.Environment) {
	db := database.NewManager()
	ws := netio.NewManager()

	natives := map[string]func(args []value.Value) (value.Value, error){
		"clock":   fnClock,
		"print":   fnPrint,
		"to_str":  fnToStr,
		"to_num":  fnToNum,
		"len":     fnLen,
		"uuid":    fnUUID,
		"humanize": fnHumanize,
		"dump":    fnDump,

		"db_connect": dbConnect(db),
		"db_query":   dbQuery(db),
		"db_execute": dbExecute(db),
		"db_close":   dbClose(db),

		"ws_connect": wsConnect(ws),
		"ws_send":    wsSend(ws),
		"ws_recv":    wsRecv(ws),
		"ws_close":   wsClose(ws),
	}

	for name, fn := range natives {
		_ = env.DeclareConst(name, value.NewNative(name, fn))
	}
}

func arity(args []value.Value, want int, label string) error {
	if len(args) != want {
		return xberr.Runtimef("%s expects %d argument(s) but got %d", label, want, len(args))
	}
	return nil
}

// fnClock mirrors the teacher's GlobalFunctionClock: a zero-arg native
// returning the current Unix time.
func fnClock(args []value.Value) (value.Value, error) {
	if err := arity(args, 0, "clock"); err != nil {
		return nil, err
	}
	return value.NewInt(time.Now().Unix()), nil
}

func fnPrint(args []value.Value) (value.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Display()
	}
	fmt.Println(strings.Join(parts, " "))
	return value.NewEmpty(), nil
}

func fnToStr(args []value.Value) (value.Value, error) {
	if err := arity(args, 1, "to_str"); err != nil {
		return nil, err
	}
	return value.ToStringValue(args[0]), nil
}

func fnToNum(args []value.Value) (value.Value, error) {
	if err := arity(args, 1, "to_num"); err != nil {
		return nil, err
	}
	return value.ToNumber(args[0])
}

func fnLen(args []value.Value) (value.Value, error) {
	if err := arity(args, 1, "len"); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case *value.Array:
		return value.NewInt(int64(len(v.Items))), nil
	case *value.String:
		return value.NewInt(int64(len(v.S))), nil
	default:
		return nil, xberr.Runtimef("type '%s' has no length", args[0].TypeName())
	}
}

func fnUUID(args []value.Value) (value.Value, error) {
	if err := arity(args, 0, "uuid"); err != nil {
		return nil, err
	}
	return hostutil.NewUUID(), nil
}

func fnHumanize(args []value.Value) (value.Value, error) {
	if err := arity(args, 1, "humanize"); err != nil {
		return nil, err
	}
	n, err := value.ToNumber(args[0])
	if err != nil {
		return nil, err
	}
	return hostutil.HumanizeNumber(n)
}

func fnDump(args []value.Value) (value.Value, error) {
	if err := arity(args, 1, "dump"); err != nil {
		return nil, err
	}
	return hostutil.Dump(args[0])
}

func dbConnect(db *database.Manager) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if err := arity(args, 3, "db_connect"); err != nil {
			return nil, err
		}
		handle, dbType, dsn := value.ToStringValue(args[0]), value.ToStringValue(args[1]), value.ToStringValue(args[2])
		if err := db.Connect(handle.S, dbType.S, dsn.S); err != nil {
			return nil, xberr.Runtimef("%s", err)
		}
		return value.NewEmpty(), nil
	}
}

func dbQuery(db *database.Manager) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return nil, xberr.Runtimef("db_query expects at least 2 arguments but got %d", len(args))
		}
		handle := value.ToStringValue(args[0])
		query := value.ToStringValue(args[1])
		sqlArgs := make([]any, len(args)-2)
		for i, a := range args[2:] {
			sqlArgs[i] = goArg(a)
		}
		result, err := db.Query(handle.S, query.S, sqlArgs)
		if err != nil {
			return nil, xberr.Runtimef("%s", err)
		}
		return result, nil
	}
}

func dbExecute(db *database.Manager) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return nil, xberr.Runtimef("db_execute expects at least 2 arguments but got %d", len(args))
		}
		handle := value.ToStringValue(args[0])
		query := value.ToStringValue(args[1])
		sqlArgs := make([]any, len(args)-2)
		for i, a := range args[2:] {
			sqlArgs[i] = goArg(a)
		}
		n, err := db.Execute(handle.S, query.S, sqlArgs)
		if err != nil {
			return nil, xberr.Runtimef("%s", err)
		}
		return value.NewInt(n), nil
	}
}

func dbClose(db *database.Manager) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if err := arity(args, 1, "db_close"); err != nil {
			return nil, err
		}
		handle := value.ToStringValue(args[0])
		if err := db.Close(handle.S); err != nil {
			return nil, xberr.Runtimef("%s", err)
		}
		return value.NewEmpty(), nil
	}
}

// goArg converts an xb Value into a plain Go value suitable as a
// database/sql query parameter.
func goArg(v value.Value) any {
	switch t := v.(type) {
	case *value.Number:
		if t.IsInt {
			return t.I
		}
		return t.F
	case *value.String:
		return t.S
	case *value.Boolean:
		return t.B
	default:
		return t.Display()
	}
}

func wsConnect(ws *netio.Manager) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if err := arity(args, 2, "ws_connect"); err != nil {
			return nil, err
		}
		handle, url := value.ToStringValue(args[0]), value.ToStringValue(args[1])
		if err := ws.Connect(handle.S, url.S); err != nil {
			return nil, xberr.Runtimef("%s", err)
		}
		return value.NewEmpty(), nil
	}
}

func wsSend(ws *netio.Manager) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if err := arity(args, 2, "ws_send"); err != nil {
			return nil, err
		}
		handle, msg := value.ToStringValue(args[0]), value.ToStringValue(args[1])
		if err := ws.Send(handle.S, msg.S); err != nil {
			return nil, xberr.Runtimef("%s", err)
		}
		return value.NewEmpty(), nil
	}
}

func wsRecv(ws *netio.Manager) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, xberr.Runtimef("ws_recv expects 1 or 2 arguments but got %d", len(args))
		}
		handle := value.ToStringValue(args[0])
		timeout := 30 * time.Second
		if len(args) == 2 {
			n, err := value.ToNumber(args[1])
			if err != nil {
				return nil, err
			}
			timeout = time.Duration(n.AsFloat() * float64(time.Second))
		}
		msg, err := ws.Recv(handle.S, timeout)
		if err != nil {
			return nil, xberr.Runtimef("%s", err)
		}
		return value.NewString(msg), nil
	}
}

func wsClose(ws *netio.Manager) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if err := arity(args, 1, "ws_close"); err != nil {
			return nil, err
		}
		handle := value.ToStringValue(args[0])
		if err := ws.Close(handle.S); err != nil {
			return nil, xberr.Runtimef("%s", err)
		}
		return value.NewEmpty(), nil
	}
}
