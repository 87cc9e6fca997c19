package cmd

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/HomingHamster/scale-and-chord-generator/config"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Uploads the catalog to S3",
	Long:  `Uploads the catalog to S3`,
	Run: func(cmd *cobra.Command, args []string) {
		publish()
	},
}

// publish hands the generated catalog off to S3 so downstream
// renderers can pick it up. The core never depends on this succeeding.
func publish() {
	cfg := config.Load()
	if cfg.S3Bucket == "" {
		panic("S3_BUCKET environment variable is not set!")
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.S3Region),
	})
	if err != nil {
		panic("Could not create an S3 session because " + err.Error())
	}
	client := s3.New(sess)

	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			panic("Error walking: " + err.Error())
		}
		if d.IsDir() {
			return nil
		}
		dat, err := os.ReadFile(path)
		if err != nil {
			panic("Could not read " + path + ": " + err.Error())
		}
		rel, err := filepath.Rel(cfg.CatalogDir, path)
		if err != nil {
			return err
		}
		key := "catalog/" + filepath.ToSlash(rel)
		_, err = client.PutObject(&s3.PutObjectInput{
			Bucket: aws.String(cfg.S3Bucket),
			Key:    aws.String(key),
			Body:   bytes.NewReader(dat),
		})
		if err != nil {
			panic("Error from S3: " + err.Error())
		}
		fmt.Printf("Uploaded %v\n", key)
		return nil
	}
	if err := filepath.WalkDir(cfg.CatalogDir, walk); err != nil {
		panic(err)
	}
}
