package db

import (
	"fmt"
	"strconv"

	"github.com/alchy/PianoChord-sub000/constants"
	"github.com/alchy/PianoChord-sub000/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// Enabled reports whether the metadata overlay is configured at all.
func Enabled() bool {
	return constants.GetDynamoEndpoint() != ""
}

// GetSongMetadatas batch-fetches optional metadata rows keyed by song
// name. BatchGetItem caps at a handful of keys, so callers pass at most
// 10 names per call.
func GetSongMetadatas(names []string) (map[string]model.SongMetadata, error) {
	if len(names) > 10 {
		return nil, fmt.Errorf("not supposed to pass in more than 10 names, got %v", len(names))
	}

	res := make(map[string]model.SongMetadata)
	if len(names) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, name := range names {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(name),
		}
		keys = append(keys, key)
	}

	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a DynamoDB session: %w", err)
	}

	client := dynamodb.New(sess)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			constants.MetadataTable: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, fmt.Errorf("error from DynamoDB: %w", err)
	}

	for _, v := range dbres.Responses[constants.MetadataTable] {
		var m model.SongMetadata
		if v["Year"] != nil && v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			m.Year = uint(year)
		}
		if v["Composer"] != nil && v["Composer"].S != nil {
			m.Composer = *v["Composer"].S
		}
		if v["Source"] != nil && v["Source"].S != nil {
			m.Source = *v["Source"].S
		}
		res[*v["PK"].S] = m
	}

	return res, nil
}
