package main

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/MasterDimmy/go-ctrlc"
	"github.com/MasterDimmy/zipologger"

	"github.com/goupdate/collbench"
)

const logFile = "./logs/collbench.log"

func main() {
	defer zipologger.Wait()

	// zipologger creates missing log dirs without the exec bit
	if err := os.MkdirAll("./logs", 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "collbench:", err)
		os.Exit(1)
	}
	log := zipologger.NewLogger(logFile, 5, 5, 5, false)

	var ctrl ctrlc.CtrlC
	var completed atomic.Bool

	go func() {
		defer ctrl.ForceStopProgram()
		defer func() {
			if e := recover(); e != nil {
				zipologger.HandlePanicLog(log, e)
				zipologger.Wait()
				os.Exit(2)
			}
		}()

		if err := collbench.Run(os.Stdout, log, collbench.DefaultConfig()); err != nil {
			log.Printf("ERROR: %v", err)
			fmt.Fprintln(os.Stderr, "collbench:", err)
			zipologger.Wait()
			os.Exit(1)
		}
		completed.Store(true)
	}()

	ctrl.InterceptKill(false, func() {
		if !completed.Load() {
			log.Print("interrupted before completion")
			zipologger.Wait()
			os.Exit(130)
		}
		log.Print("done")
	})
}
