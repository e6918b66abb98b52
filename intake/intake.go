// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package intake - feed block files from a directory to the ledger
//
// a block file is the JSON form of a transaction.Block with a
// ".json" suffix; writers should create it under another name and
// rename it into the directory so that it is complete when seen.
// after processing the file is moved to the "accepted" or
// "rejected" subdirectory
package intake

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/mu-coin/mucoind/counter"
	"github.com/mu-coin/mucoind/fault"
	"github.com/mu-coin/mucoind/ledger"
	"github.com/mu-coin/mucoind/transaction"
	"github.com/mu-coin/mucoind/util"
)

const (
	blockSuffix       = ".json"
	acceptedDirectory = "accepted"
	rejectedDirectory = "rejected"

	defaultRate  = 10.0
	defaultBurst = 1
)

// Configuration - intake settings
type Configuration struct {
	Directory string  `gluamapper:"directory" json:"directory"`
	Rate      float64 `gluamapper:"rate" json:"rate"`
	Burst     int     `gluamapper:"burst" json:"burst"`
}

// Processor - validates and records a block
type Processor interface {
	Process(*transaction.Block) (ledger.Result, error)
}

// Intake - directory watcher state
type Intake struct {
	log       *logger.L
	processor Processor
	limiter   *rate.Limiter
	directory string
	accepted  string
	rejected  string
	files     counter.Counter
}

// New - create the directory and its subdirectories if missing
func New(configuration *Configuration, processor Processor) (*Intake, error) {
	if nil == configuration || "" == configuration.Directory {
		return nil, fault.ErrMissingDirectory
	}

	r := configuration.Rate
	if r <= 0 {
		r = defaultRate
	}
	burst := configuration.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	directory := filepath.Clean(configuration.Directory)
	in := &Intake{
		log:       logger.New("intake"),
		processor: processor,
		limiter:   rate.NewLimiter(rate.Limit(r), burst),
		directory: directory,
		accepted:  filepath.Join(directory, acceptedDirectory),
		rejected:  filepath.Join(directory, rejectedDirectory),
	}

	for _, d := range []string{in.directory, in.accepted, in.rejected} {
		if err := util.EnsureDirectory(d); nil != err {
			return nil, err
		}
	}
	return in, nil
}

// Files - number of block files processed
func (in *Intake) Files() uint64 {
	return in.files.Uint64()
}

// ReadBlock - decode a block file
func ReadBlock(fileName string) (*transaction.Block, error) {
	buffer, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	var block transaction.Block
	err = json.Unmarshal(buffer, &block)
	if nil != err {
		return nil, err
	}
	return &block, nil
}

// ProcessFile - process one block file and move it aside
//
// an undecodable file is moved to rejected and the decode error
// returned. only files directly in the intake directory are moved,
// any other file is left where it is
func (in *Intake) ProcessFile(fileName string) (ledger.Result, error) {
	in.files.Increment()

	block, err := ReadBlock(fileName)
	if nil != err {
		in.log.Warnf("file: %q  decode error: %s", fileName, err)
		in.move(fileName, in.rejected)
		return ledger.Result{Index: -1}, err
	}

	result, err := in.processor.Process(block)
	if result.Accepted {
		in.log.Infof("file: %q  %s", fileName, result)
		in.move(fileName, in.accepted)
	} else {
		in.log.Warnf("file: %q  %s  error: %v", fileName, result, err)
		in.move(fileName, in.rejected)
	}
	return result, err
}

// Owns - true if the file is directly inside the intake directory
func (in *Intake) Owns(fileName string) bool {
	directory, err := filepath.Abs(filepath.Dir(fileName))
	if nil != err {
		return false
	}
	own, err := filepath.Abs(in.directory)
	if nil != err {
		return false
	}
	return directory == own
}

func (in *Intake) move(fileName string, directory string) {
	if !in.Owns(fileName) {
		in.log.Debugf("file: %q  outside intake, not moved", fileName)
		return
	}
	destination := filepath.Join(directory, filepath.Base(fileName))
	if err := os.Rename(fileName, destination); nil != err {
		in.log.Errorf("move: %q to: %q  error: %s", fileName, destination, err)
	}
}

// Pending - block files already in the directory, oldest name first
func (in *Intake) Pending() ([]string, error) {
	infos, err := ioutil.ReadDir(in.directory)
	if nil != err {
		return nil, err
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.Mode().IsRegular() && isBlockFile(info.Name()) {
			names = append(names, filepath.Join(in.directory, info.Name()))
		}
	}
	sort.Strings(names)
	return names, nil
}

func isBlockFile(name string) bool {
	return strings.HasSuffix(name, blockSuffix) && !strings.HasPrefix(filepath.Base(name), ".")
}

// Run - background process: drain existing files then follow
// directory events until shutdown
func (in *Intake) Run(args interface{}, shutdown <-chan struct{}) {
	log := in.log

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Criticalf("new watcher error: %s", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(in.directory); nil != err {
		log.Criticalf("watch: %q  error: %s", in.directory, err)
		return
	}

	log.Infof("watching: %q", in.directory)

	queue := make(chan string, 100)
	done := make(chan struct{})
	go func() {
		in.worker(ctx, queue)
		close(done)
	}()

	pending, err := in.Pending()
	if nil != err {
		log.Errorf("scan: %q  error: %s", in.directory, err)
	}
	for _, name := range pending {
		in.enqueue(queue, name)
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-watcher.Events:
			if !ok {
				break loop
			}
			if !watcherEventFileCreate(event) || !isBlockFile(event.Name) {
				continue loop
			}
			if filepath.Clean(filepath.Dir(event.Name)) != in.directory {
				continue loop
			}
			in.enqueue(queue, event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}
	cancel()
	close(queue)
	<-done
	log.Info("stopped")
}

func (in *Intake) enqueue(queue chan<- string, name string) {
	select {
	case queue <- name:
	default:
		// picked up by the scan on next start
		in.log.Warnf("queue full, skip: %q", name)
	}
}

// rate limited processing in arrival order
func (in *Intake) worker(ctx context.Context, queue <-chan string) {
	for name := range queue {
		if err := in.limiter.Wait(ctx); nil != err {
			return
		}
		if !util.EnsureFileExists(name) {
			continue
		}
		_, _ = in.ProcessFile(name)
	}
}

func watcherEventFileCreate(event fsnotify.Event) bool {
	return event.Op&fsnotify.Create == fsnotify.Create
}
