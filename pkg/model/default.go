package model

// Default returns the search service model.
func Default() *Model {
	return &Model{
		Metadata: Metadata{
			Name:        "tai-search-service",
			Version:     "0.1.0",
			ModuleName:  "taisearch",
			AuthorName:  "Jacob Petterle",
			AuthorEmail: "jacobpetterle+aiforu@gmail.com",
			CdkVersion:  "2.1.0",
			VenvDir:     ".venv",
		},
		Dependencies: Dependencies{
			Runtime: []string{
				"pydantic<=1.10.11",
				"loguru",
				"boto3",
				"requests",
				"pymongo",
				"pygit2",
				"fastapi<=0.98.0",
				"pydantic[dotenv]<=1.10.11",
				"aws-lambda-powertools",
				"pytest",
				"pytest-cov",
				"uvicorn",
				"pinecone-client[grpc]",
				"langchain==0.0.229",
				"pymongo",
				"filetype",
				"beautifulsoup4",
				"openai",
				"tiktoken",
				"aws-lambda-powertools",
				"pinecone-text",
				"pinecone-text[splade]",
				"pymupdf",
				"pdf2image",
				"PyPDF2",
				"unstructured",
				"selenium",
			},
			Dev: []string{
				"boto3-stubs[secretsmanager]",
				"boto3-stubs[essential]",
				"aws-lambda-typing",
				"boto3-stubs[essential]",
				"ipykernel",
			},
		},
		Service: ServiceSettings{
			ImageName:      "test-container",
			DockerNetwork:  "host",
			BuildDir:       "$(DIR)",
			LocalURL:       "localhost:8000/",
			LaunchName:     "TAI Search Service",
			LaunchModule:   "taiservice.searchservice.main",
			TestsDir:       "tests",
			CoverageTarget: "taiservice",
			ReportsDir:     "test-reports",
		},
		GitIgnore: []string{".build*"},
		Runtime: MustEnvTable(
			EnvVar{Name: "PINECONE_DB_API_KEY_SECRET_NAME", Value: "dev/tai_service/pinecone_db/api_key"},
			EnvVar{Name: "PINECONE_DB_ENVIRONMENT", Value: "us-east-1-aws"},
			EnvVar{Name: "PINECONE_DB_INDEX_NAME", Value: "tai-index"},
			EnvVar{Name: "DOC_DB_CREDENTIALS_SECRET_NAME", Value: "dev/tai_service/document_DB/read_write_user_password"},
			EnvVar{Name: "DOC_DB_USERNAME_SECRET_KEY", Value: "username"},
			EnvVar{Name: "DOC_DB_PASSWORD_SECRET_KEY", Value: "password"},
			EnvVar{Name: "DOC_DB_FULLY_QUALIFIED_DOMAIN_NAME", Value: "tai-service-645860363137.us-east-1.docdb-elastic.amazonaws.com"},
			EnvVar{Name: "DOC_DB_PORT", Value: "27017"},
			EnvVar{Name: "DOC_DB_DATABASE_NAME", Value: "class_resources"},
			EnvVar{Name: "DOC_DB_CLASS_RESOURCE_COLLECTION_NAME", Value: "class_resource"},
			EnvVar{Name: "DOC_DB_CLASS_RESOURCE_CHUNK_COLLECTION_NAME", Value: "class_resource_chunk"},
			EnvVar{Name: "OPENAI_API_KEY_SECRET_NAME", Value: "dev/tai_service/openai/api_key"},
			EnvVar{Name: "AWS_DEFAULT_REGION", Value: "us-east-1"},
			EnvVar{Name: "COLD_STORE_BUCKET_NAME", Value: "tai-service-class-resource-cold-store-dev"},
			EnvVar{Name: "NLTK_DATA", Value: "/tmp/nltk_data"},
		),
		Deployment: MustEnvTable(
			EnvVar{Name: "PINECONE_DB_API_KEY_SECRET_NAME", Value: "dev/tai_service/pinecone_db/api_key"},
			EnvVar{Name: "OPENAI_API_KEY_SECRET_NAME", Value: "dev/tai_service/openai/api_key"},
			EnvVar{Name: "PINECONE_DB_ENVIRONMENT", Value: "us-east-1-aws"},
			EnvVar{Name: "DOC_DB_READ_ONLY_USER_PASSWORD_SECRET_NAME", Value: "dev/tai_service/document_DB/read_ONLY_user_password"},
			EnvVar{Name: "DOC_DB_READ_WRITE_USER_PASSWORD_SECRET_NAME", Value: "dev/tai_service/document_DB/read_write_user_password"},
			EnvVar{Name: "DOC_DB_ADMIN_USER_PASSWORD_SECRET_NAME", Value: "dev/tai_service/document_DB/admin_password"},
			EnvVar{Name: "AWS_DEPLOYMENT_ACCOUNT_ID", Value: "645860363137"},
			EnvVar{Name: "DEPLOYMENT_TYPE", Value: "dev"},
		),
	}
}
