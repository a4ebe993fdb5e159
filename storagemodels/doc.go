/*
Package storagemodels defines the data structures shared by datastores and
relation descriptors.

QueryParams:
Parameters for querying the datastore:

	params := &QueryParams{
	    KeyConditionExpression: "PK = :pk",
	    ExpressionAttributeValues: map[string]types.AttributeValue{
	        ":pk": &types.AttributeValueMemberS{Value: "SYSTEM#123"},
	    },
	    IndexName: aws.String("GSI1"),
	    Limit:     aws.Int32(100),
	}

Relation descriptors bind the owner's partition key to ":pk" and an optional
sort key prefix to ":sk", so in-memory datastores can evaluate the same
params without parsing expressions.
*/
package storagemodels
