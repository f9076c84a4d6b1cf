package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/rtanim/api"
	"github.com/matt-g-everett/rtanim/stream"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Renderer *stream.Renderer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	a.Renderer.Subscribe()
}

func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	a.Renderer.Run()
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&a.Config)
	if err != nil {
		panic(err)
	}
}

// watchConfig reloads the animation declarations when the config file
// changes on disk.
func (a *app) watchConfig(configPath string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("Config watching disabled: %v", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(configPath); err != nil {
		log.Printf("Config watching disabled: %v", err)
		return
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			f, err := os.Open(configPath)
			if err != nil {
				log.Printf("Config reload failed: %v", err)
				continue
			}
			var config stream.Config
			err = yaml.NewDecoder(f).Decode(&config)
			f.Close()
			if err != nil {
				log.Printf("Config reload failed: %v", err)
				continue
			}
			a.Renderer.UpdateAnimations(config.Animations)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Config watcher: %v", err)
		}
	}
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("rtanim").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	client := mqtt.NewClient(options)

	a.Client = client
	a.Renderer = stream.NewRenderer(a.Config, client)

	go a.watchConfig(*configPath)
	go api.NewApi(a.Renderer).Serve()

	a.run()
}
