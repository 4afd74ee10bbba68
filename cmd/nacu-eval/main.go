// nacu-eval is an interactive front end for the arithmetic unit: it reads
// operation lines from stdin and prints fixed-point results, for poking at
// the tables and the saturation behavior by hand.
//
// Commands:
//
//	sigmoid X | tanh X | exp X    evaluate the non-linear functions
//	mac A B                       multiply-accumulate into the accumulator
//	div A B                       softmax division A/B
//	clear                         clear the MAC accumulator
//	format                        print the operating format
//	quit
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/silagokth/NACU/internal/fixed"
	"github.com/silagokth/NACU/internal/nacu"
)

var frac = flag.Int("frac", 11, "fractional bits of the operating format")

func main() {
	flag.Parse()

	cfg := nacu.DefaultConfig()
	cfg.Format.Frac = *frac
	unit, err := nacu.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("nacu-eval, format %s\n", unit.Format())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "quit", "exit":
			return
		case "format":
			fmt.Println(unit.Format())
		case "clear":
			unit.ClearAccumulator()
			fmt.Println("acc = 0")
		case "sigmoid", "tanh", "exp":
			x, ok := parseArgs(unit.Format(), args, 1)
			if !ok {
				continue
			}
			op := map[string]nacu.Opcode{
				"sigmoid": nacu.OpSigmoid, "tanh": nacu.OpTanh, "exp": nacu.OpExponential,
			}[cmd]
			r := unit.Execute(nacu.Request{Op: op, A: x[0]})
			printValue(r.Primary)
		case "mac":
			x, ok := parseArgs(unit.Format(), args, 2)
			if !ok {
				continue
			}
			r := unit.Execute(nacu.Request{Op: nacu.OpMAC, A: x[0], B: x[1]})
			printValue(r.Primary)
		case "div":
			x, ok := parseArgs(unit.Format(), args, 2)
			if !ok {
				continue
			}
			r := unit.Execute(nacu.Request{Op: nacu.OpSoftmaxDiv, A: x[0], Denominator: x[1]})
			printValue(r.Softmax)
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}

func parseArgs(f fixed.Format, args []string, want int) ([]fixed.Value, bool) {
	if len(args) != want {
		fmt.Printf("want %d numeric arguments\n", want)
		return nil, false
	}
	out := make([]fixed.Value, want)
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			fmt.Printf("bad number %q\n", a)
			return nil, false
		}
		out[i] = f.FromFloat(x)
	}
	return out, true
}

func printValue(v fixed.Value) {
	fmt.Printf("%v (raw %d, %s)\n", v.Float(), v.Raw, v.Fmt)
}
